package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/utils"
)

func TestInquiryService_Create(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewInquiryService(db)
	owner := seedOwner(t, db, "Uowner")
	tenant := seedOwner(t, db, "Utenant")
	property := seedProperty(t, NewPropertyService(db), owner, "Taipei Studio", "Taipei", "Studio", 10000)

	inquiry, err := svc.Create(context.Background(), tenant.ID, property.ID, "interested")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusPending, inquiry.Status)
	assert.Equal(t, tenant.ID, inquiry.TenantID)
	assert.Equal(t, property.ID, inquiry.PropertyID)
	// Create returns the inquiry with its associations loaded.
	assert.Equal(t, owner.ID, inquiry.Property.Owner.ID)
	assert.Equal(t, tenant.DisplayName, inquiry.Tenant.DisplayName)

	// Repeat contacts are separate inquiries.
	_, err = svc.Create(context.Background(), tenant.ID, property.ID, "still interested")
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.Inquiry{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestInquiryService_FindByTenantAndLandlord(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewInquiryService(db)
	propertySvc := NewPropertyService(db)
	owner := seedOwner(t, db, "Uowner")
	otherOwner := seedOwner(t, db, "Uother")
	tenant := seedOwner(t, db, "Utenant")

	mine := seedProperty(t, propertySvc, owner, "Mine", "Taipei", "Studio", 10000)
	theirs := seedProperty(t, propertySvc, otherOwner, "Theirs", "Taipei", "Studio", 11000)

	_, err := svc.Create(context.Background(), tenant.ID, mine.ID, "a")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tenant.ID, theirs.ID, "b")
	require.NoError(t, err)

	byTenant, err := svc.FindByTenantID(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Len(t, byTenant, 2)

	// The landlord sees only inquiries against their own properties.
	byLandlord, err := svc.FindByLandlordID(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, byLandlord, 1)
	assert.Equal(t, mine.ID, byLandlord[0].PropertyID)
	assert.Equal(t, tenant.DisplayName, byLandlord[0].Tenant.DisplayName)
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewInquiryService(db)
	owner := seedOwner(t, db, "Uowner")
	tenant := seedOwner(t, db, "Utenant")
	property := seedProperty(t, NewPropertyService(db), owner, "Taipei Studio", "Taipei", "Studio", 10000)

	inquiry, err := svc.Create(context.Background(), tenant.ID, property.ID, "interested")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), inquiry.ID, models.InquiryStatusApproved))
	updated, err := svc.FindByID(context.Background(), inquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusApproved, updated.Status)

	err = svc.UpdateStatus(context.Background(), uuid.New(), models.InquiryStatusRejected)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
