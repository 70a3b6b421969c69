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

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func seedOwner(t *testing.T, db *gorm.DB, lineUserID string) *models.User {
	t.Helper()
	user, err := NewUserService(db).CreateOrUpdate(context.Background(), lineUserID, "Owner "+lineUserID)
	require.NoError(t, err)
	return user
}

func seedProperty(t *testing.T, svc IPropertyService, owner *models.User, title, location, housingType string, price float64) *models.Property {
	t.Helper()
	property, err := svc.Create(context.Background(), CreatePropertyParams{
		Title:    title,
		Location: location,
		Type:     housingType,
		Price:    price,
		OwnerID:  owner.ID,
	})
	require.NoError(t, err)
	return property
}

func TestPropertyService_Create(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewPropertyService(db)
	owner := seedOwner(t, db, "U1")

	property, err := svc.Create(context.Background(), CreatePropertyParams{
		Title:       "Taipei Studio",
		Location:    "Taipei",
		Type:        "Studio",
		Price:       12000,
		Description: "Near the MRT",
		OwnerID:     owner.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusAvailable, property.Status)
	assert.Equal(t, owner.ID, property.OwnerID)

	_, err = svc.Create(context.Background(), CreatePropertyParams{
		Title:    "Free house",
		Location: "Taipei",
		Type:     "Studio",
		Price:    0,
		OwnerID:  owner.ID,
	})
	assert.Error(t, err)
}

func TestPropertyService_FindByID_PreloadsOwner(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewPropertyService(db)
	owner := seedOwner(t, db, "U1")
	created := seedProperty(t, svc, owner, "Taipei Studio", "Taipei", "Studio", 12000)

	property, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.DisplayName, property.Owner.DisplayName)

	_, err = svc.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPropertyService_Search(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewPropertyService(db)
	owner := seedOwner(t, db, "U1")

	seedProperty(t, svc, owner, "Taipei Studio", "Taipei", "Studio", 8000)
	seedProperty(t, svc, owner, "Taipei Suite", "Taipei", "Shared Suite", 15000)
	seedProperty(t, svc, owner, "Taichung Studio", "Taichung", "Studio", 6000)
	rented := seedProperty(t, svc, owner, "Rented Studio", "Taipei", "Studio", 9000)
	require.NoError(t, svc.UpdateStatus(context.Background(), rented.ID, models.PropertyStatusRented))

	ctx := context.Background()

	// Unfiltered search returns only AVAILABLE properties.
	all, err := svc.Search(ctx, PropertySearchFilters{}, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Filters combine with AND.
	results, err := svc.Search(ctx, PropertySearchFilters{
		Location: strPtr("Taipei"),
		Type:     strPtr("Studio"),
	}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Taipei Studio", results[0].Title)

	results, err = svc.Search(ctx, PropertySearchFilters{
		MinPrice: floatPtr(5000),
		MaxPrice: floatPtr(10000),
	}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// No match is an empty slice, not an error.
	results, err = svc.Search(ctx, PropertySearchFilters{Location: strPtr("Kaohsiung")}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	// Limit caps the page.
	results, err = svc.Search(ctx, PropertySearchFilters{}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestPropertyService_FindByOwnerID(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewPropertyService(db)
	owner := seedOwner(t, db, "U1")
	other := seedOwner(t, db, "U2")

	seedProperty(t, svc, owner, "A", "Taipei", "Studio", 8000)
	seedProperty(t, svc, owner, "B", "Taipei", "Studio", 9000)
	seedProperty(t, svc, other, "C", "Taipei", "Studio", 7000)

	properties, err := svc.FindByOwnerID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, properties, 2)
}

func TestPropertyService_UpdateStatus_NotFound(t *testing.T) {
	db := utils.SetupTestDB(t)
	svc := NewPropertyService(db)

	err := svc.UpdateStatus(context.Background(), uuid.New(), models.PropertyStatusRented)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
