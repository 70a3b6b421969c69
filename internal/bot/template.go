package bot

import (
	"fmt"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/tinhour/line-rent-bot/internal/models"
)

// Text commands understood by the message handler. The welcome and
// confirmation quick replies send these back as plain messages.
const (
	CmdFindHouse    = "find a house"
	CmdListProperty = "list a property"
	CmdMyProperties = "my properties"
	CmdMyInquiries  = "my inquiries"
	CmdHelp         = "help"
)

// Cities is the fixed set of locations offered at filter and listing steps.
var Cities = []string{"Taipei", "New Taipei", "Taoyuan", "Taichung", "Kaohsiung"}

// HousingTypes is the fixed set of property types.
var HousingTypes = []string{"Entire Home", "Studio", "Shared Suite", "Single Room"}

// PriceBand is one selectable monthly-rent range. Value is encoded as
// "min-max" in postback payloads, or ValueAll for no restriction.
type PriceBand struct {
	Label string
	Value string
}

// PriceBands is the fixed set of rent ranges offered at the price step.
var PriceBands = []PriceBand{
	{Label: "Under 5000", Value: "0-5000"},
	{Label: "5000-10000", Value: "5000-10000"},
	{Label: "10000-15000", Value: "10000-15000"},
	{Label: "15000-20000", Value: "15000-20000"},
	{Label: "Over 20000", Value: "20000-999999"},
}

// ListingPrices is the fixed set of rents offered when creating a listing.
var ListingPrices = []float64{5000, 8000, 10000, 15000, 20000}

func intPtr(v int) *int { return &v }

// inquiryStatusStyle is the fixed status-to-label/color table for inquiry
// cards.
func inquiryStatusStyle(status models.InquiryStatus) (label, color string) {
	switch status {
	case models.InquiryStatusPending:
		return "Pending", "#FF8000"
	case models.InquiryStatusApproved:
		return "Approved", "#00B900"
	case models.InquiryStatusRejected:
		return "Rejected", "#FF0000"
	case models.InquiryStatusCompleted:
		return "Completed", "#0000FF"
	default:
		return "Unknown", "#888888"
	}
}

func description(p *models.Property) string {
	if p.Description == "" {
		return "No description provided."
	}
	return p.Description
}

// priceBandText renders a "min-max" price value for humans.
func priceBandText(price string) string {
	if price == "" || price == ValueAll {
		return "any"
	}
	parts := strings.SplitN(price, "-", 2)
	if len(parts) != 2 {
		return price
	}
	switch {
	case parts[1] == "999999":
		return fmt.Sprintf("over %s", parts[0])
	case parts[0] == "0":
		return fmt.Sprintf("under %s", parts[1])
	default:
		return fmt.Sprintf("%s-%s", parts[0], parts[1])
	}
}

func orAny(v string) string {
	if v == "" || v == ValueAll {
		return "any"
	}
	return v
}

func postbackButton(label, displayText string, action Action) (*linebot.QuickReplyButton, error) {
	data, err := action.Encode()
	if err != nil {
		return nil, err
	}
	return linebot.NewQuickReplyButton("", &linebot.PostbackAction{
		Label:       label,
		Data:        data,
		DisplayText: displayText,
	}), nil
}

func messageButton(label, text string) *linebot.QuickReplyButton {
	return linebot.NewQuickReplyButton("", linebot.NewMessageAction(label, text))
}

// Welcome greets a newly followed user with the three entry points.
func Welcome(displayName string) linebot.SendingMessage {
	text := fmt.Sprintf("Hi %s, welcome to the rental bot!\n\n"+
		"I can help you:\n1. Find a place to rent\n2. List your property\n\n"+
		"What would you like to do?", displayName)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(
		messageButton("Find a house", CmdFindHouse),
		messageButton("List a property", CmdListProperty),
		messageButton("Help", CmdHelp),
	))
}

// LocationPrompt starts the search branch.
func LocationPrompt() (linebot.SendingMessage, error) {
	buttons := make([]*linebot.QuickReplyButton, 0, len(Cities)+1)
	for _, city := range Cities {
		btn, err := postbackButton(city, city, NewAction(ActionSelectLocation, map[string]string{"location": city}))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, btn)
	}
	btn, err := postbackButton("Anywhere", "Anywhere", NewAction(ActionSelectLocation, map[string]string{"location": ValueAll}))
	if err != nil {
		return nil, err
	}
	buttons = append(buttons, btn)
	return linebot.NewTextMessage("Which area are you looking in?").
		WithQuickReplies(linebot.NewQuickReplyItems(buttons...)), nil
}

// TypePrompt continues the search branch with the chosen location carried
// forward.
func TypePrompt(location string) (linebot.SendingMessage, error) {
	buttons := make([]*linebot.QuickReplyButton, 0, len(HousingTypes)+1)
	for _, housingType := range HousingTypes {
		btn, err := postbackButton(housingType, housingType, NewAction(ActionSelectPropertyType, map[string]string{
			"location": location,
			"type":     housingType,
		}))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, btn)
	}
	btn, err := postbackButton("Any type", "Any type", NewAction(ActionSelectPropertyType, map[string]string{
		"location": location,
		"type":     ValueAll,
	}))
	if err != nil {
		return nil, err
	}
	buttons = append(buttons, btn)
	text := fmt.Sprintf("Area: %s. What type of place?", orAny(location))
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(buttons...)), nil
}

// PricePrompt continues the search branch with location and type carried.
func PricePrompt(location, housingType string) (linebot.SendingMessage, error) {
	buttons := make([]*linebot.QuickReplyButton, 0, len(PriceBands)+1)
	for _, band := range PriceBands {
		btn, err := postbackButton(band.Label, band.Label, NewAction(ActionSelectPriceRange, map[string]string{
			"location": location,
			"type":     housingType,
			"price":    band.Value,
		}))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, btn)
	}
	btn, err := postbackButton("Any price", "Any price", NewAction(ActionSelectPriceRange, map[string]string{
		"location": location,
		"type":     housingType,
		"price":    ValueAll,
	}))
	if err != nil {
		return nil, err
	}
	buttons = append(buttons, btn)
	text := fmt.Sprintf("Area: %s, type: %s. What monthly budget?", orAny(location), orAny(housingType))
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(buttons...)), nil
}

// SearchSummary recaps the accumulated filters and offers the final jump to
// the result list.
func SearchSummary(location, housingType, price string) (linebot.SendingMessage, error) {
	btn, err := postbackButton("Show results", "Show results", NewAction(ActionShowPropertyList, map[string]string{
		"location": location,
		"type":     housingType,
		"price":    price,
	}))
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("Search criteria:\nArea: %s\nType: %s\nRent: %s\n\nTap below to see matching places.",
		orAny(location), orAny(housingType), priceBandText(price))
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(btn)), nil
}

// NoResults tells the tenant nothing matched and offers a restart.
func NoResults() linebot.SendingMessage {
	return linebot.NewTextMessage("Sorry, no places match your criteria right now. Try adjusting your search.").
		WithQuickReplies(linebot.NewQuickReplyItems(messageButton("Search again", CmdFindHouse)))
}

func propertyHeader(p *models.Property) []linebot.FlexComponent {
	return []linebot.FlexComponent{
		&linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   p.Title,
			Weight: linebot.FlexTextWeightTypeBold,
			Size:   linebot.FlexTextSizeTypeXl,
			Wrap:   true,
		},
		&linebot.TextComponent{
			Type:  linebot.FlexComponentTypeText,
			Text:  fmt.Sprintf("%s | %s", p.Location, p.Type),
			Size:  linebot.FlexTextSizeTypeMd,
			Color: "#666666",
			Wrap:  true,
		},
		&linebot.TextComponent{
			Type:   linebot.FlexComponentTypeText,
			Text:   fmt.Sprintf("%.0f / month", p.Price),
			Weight: linebot.FlexTextWeightTypeBold,
			Size:   linebot.FlexTextSizeTypeLg,
			Wrap:   true,
		},
	}
}

func detailButton(p *models.Property) (*linebot.ButtonComponent, error) {
	data, err := NewAction(ActionViewPropertyDetail, map[string]string{"propertyId": p.ID.String()}).Encode()
	if err != nil {
		return nil, err
	}
	return &linebot.ButtonComponent{
		Type:   linebot.FlexComponentTypeButton,
		Style:  linebot.FlexButtonStyleTypePrimary,
		Height: linebot.FlexButtonHeightTypeSm,
		Action: &linebot.PostbackAction{Label: "View details", Data: data, DisplayText: "View details"},
	}, nil
}

func contactButton(p *models.Property) (*linebot.ButtonComponent, error) {
	data, err := NewAction(ActionContactLandlord, map[string]string{"propertyId": p.ID.String()}).Encode()
	if err != nil {
		return nil, err
	}
	return &linebot.ButtonComponent{
		Type:   linebot.FlexComponentTypeButton,
		Style:  linebot.FlexButtonStyleTypeSecondary,
		Height: linebot.FlexButtonHeightTypeSm,
		Margin: linebot.FlexComponentMarginTypeMd,
		Action: &linebot.PostbackAction{Label: "Contact landlord", Data: data, DisplayText: "Contact landlord"},
	}, nil
}

func propertyBubble(p *models.Property, withContact bool) (*linebot.BubbleContainer, error) {
	body := &linebot.BoxComponent{
		Type:    linebot.FlexComponentTypeBox,
		Layout:  linebot.FlexBoxLayoutTypeVertical,
		Spacing: linebot.FlexComponentSpacingTypeMd,
		Contents: append(propertyHeader(p),
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  fmt.Sprintf("Landlord: %s", p.Owner.DisplayName),
				Size:  linebot.FlexTextSizeTypeSm,
				Color: "#8C8C8C",
				Wrap:  true,
			},
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  description(p),
				Size:  linebot.FlexTextSizeTypeSm,
				Color: "#8C8C8C",
				Wrap:  true,
			},
		),
	}

	detail, err := detailButton(p)
	if err != nil {
		return nil, err
	}
	footerContents := []linebot.FlexComponent{detail}
	if withContact {
		contact, err := contactButton(p)
		if err != nil {
			return nil, err
		}
		footerContents = append(footerContents, contact)
	}

	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: body,
		Footer: &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeVertical,
			Contents: footerContents,
		},
	}, nil
}

// PropertyCarousel renders one summary card per property. withContact adds
// the contact-landlord button used on search results; a landlord browsing
// their own listings gets the detail button only.
func PropertyCarousel(altText string, properties []models.Property, withContact bool) (linebot.SendingMessage, error) {
	bubbles := make([]*linebot.BubbleContainer, 0, len(properties))
	for i := range properties {
		bubble, err := propertyBubble(&properties[i], withContact)
		if err != nil {
			return nil, err
		}
		bubbles = append(bubbles, bubble)
	}
	return linebot.NewFlexMessage(altText, &linebot.CarouselContainer{
		Type:     linebot.FlexContainerTypeCarousel,
		Contents: bubbles,
	}), nil
}

func labelValueRow(label, value string) *linebot.BoxComponent {
	return &linebot.BoxComponent{
		Type:    linebot.FlexComponentTypeBox,
		Layout:  linebot.FlexBoxLayoutTypeBaseline,
		Spacing: linebot.FlexComponentSpacingTypeSm,
		Contents: []linebot.FlexComponent{
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  label,
				Size:  linebot.FlexTextSizeTypeSm,
				Color: "#AAAAAA",
				Flex:  intPtr(2),
			},
			&linebot.TextComponent{
				Type:  linebot.FlexComponentTypeText,
				Text:  value,
				Size:  linebot.FlexTextSizeTypeSm,
				Color: "#666666",
				Flex:  intPtr(5),
				Wrap:  true,
			},
		},
	}
}

// PropertyDetail renders the single-property card with a contact button and
// a way back to the search.
func PropertyDetail(p *models.Property) (linebot.SendingMessage, error) {
	contact, err := contactButton(p)
	if err != nil {
		return nil, err
	}

	body := &linebot.BoxComponent{
		Type:   linebot.FlexComponentTypeBox,
		Layout: linebot.FlexBoxLayoutTypeVertical,
		Contents: []linebot.FlexComponent{
			&linebot.TextComponent{
				Type:   linebot.FlexComponentTypeText,
				Text:   p.Title,
				Weight: linebot.FlexTextWeightTypeBold,
				Size:   linebot.FlexTextSizeTypeXl,
				Wrap:   true,
			},
			&linebot.BoxComponent{
				Type:    linebot.FlexComponentTypeBox,
				Layout:  linebot.FlexBoxLayoutTypeVertical,
				Margin:  linebot.FlexComponentMarginTypeLg,
				Spacing: linebot.FlexComponentSpacingTypeSm,
				Contents: []linebot.FlexComponent{
					labelValueRow("Area", p.Location),
					labelValueRow("Type", p.Type),
					labelValueRow("Rent", fmt.Sprintf("%.0f / month", p.Price)),
					labelValueRow("Landlord", p.Owner.DisplayName),
					labelValueRow("About", description(p)),
				},
			},
		},
	}

	return linebot.NewFlexMessage("Property details", &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: body,
		Footer: &linebot.BoxComponent{
			Type:    linebot.FlexComponentTypeBox,
			Layout:  linebot.FlexBoxLayoutTypeVertical,
			Spacing: linebot.FlexComponentSpacingTypeSm,
			Contents: []linebot.FlexComponent{
				contact,
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Style:  linebot.FlexButtonStyleTypeSecondary,
					Height: linebot.FlexButtonHeightTypeSm,
					Action: linebot.NewMessageAction("Back to search", CmdFindHouse),
				},
			},
		},
	}), nil
}

func inquiryBubble(inq *models.Inquiry) (*linebot.BubbleContainer, error) {
	statusLabel, statusColor := inquiryStatusStyle(inq.Status)

	var footerAction *linebot.PostbackAction
	if inq.Status == models.InquiryStatusPending {
		data, err := NewAction(ActionPayDeposit, map[string]string{"inquiryId": inq.ID.String()}).Encode()
		if err != nil {
			return nil, err
		}
		footerAction = &linebot.PostbackAction{Label: "Pay deposit", Data: data, DisplayText: "Pay deposit"}
	} else {
		data, err := NewAction(ActionViewPropertyDetail, map[string]string{"propertyId": inq.PropertyID.String()}).Encode()
		if err != nil {
			return nil, err
		}
		footerAction = &linebot.PostbackAction{Label: "View details", Data: data, DisplayText: "View details"}
	}

	style := linebot.FlexButtonStyleTypeSecondary
	if inq.Status == models.InquiryStatusPending {
		style = linebot.FlexButtonStyleTypePrimary
	}

	return &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   inq.Property.Title,
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
					Wrap:   true,
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   statusLabel,
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeSm,
					Color:  statusColor,
					Margin: linebot.FlexComponentMarginTypeMd,
				},
				&linebot.BoxComponent{
					Type:    linebot.FlexComponentTypeBox,
					Layout:  linebot.FlexBoxLayoutTypeVertical,
					Margin:  linebot.FlexComponentMarginTypeLg,
					Spacing: linebot.FlexComponentSpacingTypeSm,
					Contents: []linebot.FlexComponent{
						labelValueRow("Area", inq.Property.Location),
						labelValueRow("Rent", fmt.Sprintf("%.0f / month", inq.Property.Price)),
						labelValueRow("Asked", inq.CreatedAt.Format("2006-01-02")),
					},
				},
			},
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Style:  style,
					Height: linebot.FlexButtonHeightTypeSm,
					Action: footerAction,
				},
			},
		},
	}, nil
}

// InquiryCarousel renders one status card per inquiry.
func InquiryCarousel(inquiries []models.Inquiry) (linebot.SendingMessage, error) {
	bubbles := make([]*linebot.BubbleContainer, 0, len(inquiries))
	for i := range inquiries {
		bubble, err := inquiryBubble(&inquiries[i])
		if err != nil {
			return nil, err
		}
		bubbles = append(bubbles, bubble)
	}
	return linebot.NewFlexMessage("Your inquiries", &linebot.CarouselContainer{
		Type:     linebot.FlexContainerTypeCarousel,
		Contents: bubbles,
	}), nil
}

// ListingTypePrompt starts the listing branch.
func ListingTypePrompt() (linebot.SendingMessage, error) {
	buttons := make([]*linebot.QuickReplyButton, 0, len(HousingTypes))
	for _, housingType := range HousingTypes {
		btn, err := postbackButton(housingType, housingType, NewAction(ActionCreateProperty, map[string]string{"type": housingType}))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, btn)
	}
	return linebot.NewTextMessage("What type of place are you renting out?").
		WithQuickReplies(linebot.NewQuickReplyItems(buttons...)), nil
}

// ListingLocationPrompt continues the listing branch.
func ListingLocationPrompt(housingType string) (linebot.SendingMessage, error) {
	buttons := make([]*linebot.QuickReplyButton, 0, len(Cities))
	for _, city := range Cities {
		btn, err := postbackButton(city, city, NewAction(ActionSetPropertyLocation, map[string]string{
			"type":     housingType,
			"location": city,
		}))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, btn)
	}
	text := fmt.Sprintf("Type: %s. Where is the property?", housingType)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(buttons...)), nil
}

// ListingPricePrompt asks for the monthly rent. Only the fixed amounts are
// wired as postbacks; typed amounts are not handled.
func ListingPricePrompt(housingType, location string) (linebot.SendingMessage, error) {
	buttons := make([]*linebot.QuickReplyButton, 0, len(ListingPrices))
	title := fmt.Sprintf("%s %s", location, housingType)
	for _, price := range ListingPrices {
		label := fmt.Sprintf("%.0f", price)
		btn, err := postbackButton(label, label, NewAction(ActionConfirmPropertyCreation, map[string]string{
			"type":     housingType,
			"location": location,
			"price":    label,
			"title":    title,
		}))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, btn)
	}
	text := fmt.Sprintf("Type: %s, area: %s.\n\nEnter the monthly rent:", housingType, location)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(buttons...)), nil
}

// ListingConfirmed announces the published listing with next actions.
func ListingConfirmed(p *models.Property) linebot.SendingMessage {
	text := fmt.Sprintf("Congratulations, your listing is live!\n\n"+
		"Title: %s\nType: %s\nArea: %s\nRent: %.0f / month\n\n"+
		"You'll be notified when a tenant shows interest.",
		p.Title, p.Type, p.Location, p.Price)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(
		messageButton("My properties", CmdMyProperties),
		messageButton("List another", CmdListProperty),
	))
}

// ContactPrompt confirms the inquiry to the tenant and offers the deposit
// payment.
func ContactPrompt(inq *models.Inquiry, deposit float64) (linebot.SendingMessage, error) {
	payButton, err := postbackButton("Pay deposit", "Pay deposit",
		NewAction(ActionPayDeposit, map[string]string{"inquiryId": inq.ID.String()}))
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("You've expressed interest in \"%s\"!\n\n"+
		"To receive the landlord's contact details, pay a deposit of %.0f.\n\n"+
		"You'll get their details immediately after payment.",
		inq.Property.Title, deposit)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(
		payButton,
		messageButton("Not now", CmdMyInquiries),
	)), nil
}

// OwnerInterestNotice is pushed to the landlord when a tenant makes contact.
func OwnerInterestNotice(inq *models.Inquiry, commission float64) (linebot.SendingMessage, error) {
	payButton, err := postbackButton("Pay fee", "Pay fee to see tenant details",
		NewAction(ActionPayCommission, map[string]string{"inquiryId": inq.ID.String()}))
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("A tenant is interested in your listing \"%s\"!\n\n"+
		"To see their contact details, pay an introduction fee of %.0f.\n\n"+
		"You'll get their details immediately after payment.",
		inq.Property.Title, commission)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(payButton)), nil
}

// DepositReceipt reveals the landlord's identity to the paying tenant.
func DepositReceipt(inq *models.Inquiry) linebot.SendingMessage {
	text := fmt.Sprintf("Deposit received!\n\n"+
		"Landlord contact details:\nName: %s\nLINE ID: %s\n\n"+
		"Reach out to them directly to take it from here.",
		inq.Property.Owner.DisplayName, inq.Property.Owner.LineUserID)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(
		messageButton("My inquiries", CmdMyInquiries),
	))
}

// DepositOwnerNotice is pushed to the landlord after the tenant's deposit
// clears, revealing the tenant and offering the commission payment.
func DepositOwnerNotice(inq *models.Inquiry, commission float64) (linebot.SendingMessage, error) {
	payButton, err := postbackButton("Pay fee", "Pay fee to see tenant details",
		NewAction(ActionPayCommission, map[string]string{"inquiryId": inq.ID.String()}))
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("The tenant has paid their deposit!\n\n"+
		"They're interested in \"%s\".\n\n"+
		"Tenant details:\nName: %s\nLINE ID: %s\n\n"+
		"Pay the %.0f introduction fee to confirm, then contact them soon.",
		inq.Property.Title, inq.Tenant.DisplayName, inq.Tenant.LineUserID, commission)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(payButton)), nil
}

// CommissionReceipt reveals the tenant's identity to the paying landlord.
func CommissionReceipt(inq *models.Inquiry) linebot.SendingMessage {
	text := fmt.Sprintf("Fee received!\n\n"+
		"Tenant contact details:\nName: %s\nLINE ID: %s\n\n"+
		"Reach out to them directly to take it from here.",
		inq.Tenant.DisplayName, inq.Tenant.LineUserID)
	return linebot.NewTextMessage(text).WithQuickReplies(linebot.NewQuickReplyItems(
		messageButton("My properties", CmdMyProperties),
	))
}

// CommissionTenantNotice is pushed to the tenant after the landlord pays.
func CommissionTenantNotice(inq *models.Inquiry) linebot.SendingMessage {
	text := fmt.Sprintf("The landlord has confirmed your inquiry about \"%s\"!\n\n"+
		"Landlord details:\nName: %s\nLINE ID: %s\n\n"+
		"They may contact you, or feel free to reach out first.",
		inq.Property.Title, inq.Property.Owner.DisplayName, inq.Property.Owner.LineUserID)
	return linebot.NewTextMessage(text)
}

// Help explains the flows for both roles.
func Help() linebot.SendingMessage {
	return linebot.NewTextMessage("How to use the rental bot\n\n" +
		"Tenants:\n" +
		"1. Send \"" + CmdFindHouse + "\" to start a search\n" +
		"2. Pick an area, type and budget\n" +
		"3. Browse matching places\n" +
		"4. Tap \"Contact landlord\" and pay the deposit\n" +
		"5. You'll get the landlord's contact details right away\n\n" +
		"Landlords:\n" +
		"1. Send \"" + CmdListProperty + "\" to create a listing\n" +
		"2. Follow the prompts to describe it\n" +
		"3. Send \"" + CmdMyProperties + "\" to review your listings\n" +
		"4. You'll be notified when a tenant is interested\n" +
		"5. Pay the 10% introduction fee to see their details")
}

// Fallback is the default reply for unrecognized input.
func Fallback() linebot.SendingMessage {
	return linebot.NewTextMessage("Hi! How can I help? Try \"" + CmdFindHouse + "\", \"" + CmdListProperty +
		"\", \"" + CmdMyProperties + "\", \"" + CmdMyInquiries + "\" or \"" + CmdHelp + "\".")
}

// NotFound is the generic lookup-miss reply.
func NotFound(what string) linebot.SendingMessage {
	return linebot.NewTextMessage(fmt.Sprintf("Sorry, that %s could not be found. It may no longer be available.", what))
}

// GenericError is the catch-all failure reply.
func GenericError() linebot.SendingMessage {
	return linebot.NewTextMessage("Sorry, something went wrong handling your request. Please try again later.")
}
