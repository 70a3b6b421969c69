package bot

import (
	"fmt"
	"net/url"
)

// Postback action names. These are the full vocabulary of the conversation
// state machine; the dispatch table in dispatcher.go must cover every one.
const (
	ActionSelectLocation          = "select_location"
	ActionSelectPropertyType      = "select_property_type"
	ActionSelectPriceRange        = "select_price_range"
	ActionShowPropertyList        = "show_property_list"
	ActionViewPropertyDetail      = "view_property_detail"
	ActionContactLandlord         = "contact_landlord"
	ActionCreateProperty          = "create_property"
	ActionSetPropertyLocation     = "set_property_location"
	ActionConfirmPropertyCreation = "confirm_property_creation"
	ActionPayDeposit              = "pay_deposit"
	ActionPayCommission           = "pay_commission"
)

// ValueAll marks a filter step as unrestricted.
const ValueAll = "all"

// MaxPayloadBytes is a conservative cap below the LINE postback data limit.
// Encode fails rather than truncating when a payload would exceed it.
const MaxPayloadBytes = 300

// Action is a decoded postback payload: the action name plus the flat
// parameter map that carries all accumulated conversation state.
type Action struct {
	Name   string
	Params map[string]string
}

// NewAction builds an Action, copying params so callers can reuse their map.
func NewAction(name string, params map[string]string) Action {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return Action{Name: name, Params: copied}
}

// ParseAction decodes an `action=<name>&k=v...` payload. Unknown keys are
// kept; a missing action name is an error.
func ParseAction(data string) (Action, error) {
	values, err := url.ParseQuery(data)
	if err != nil {
		return Action{}, fmt.Errorf("malformed postback payload %q: %w", data, err)
	}
	name := values.Get("action")
	if name == "" {
		return Action{}, fmt.Errorf("postback payload %q has no action name", data)
	}
	params := make(map[string]string, len(values))
	for key := range values {
		if key == "action" {
			continue
		}
		params[key] = values.Get(key)
	}
	return Action{Name: name, Params: params}, nil
}

// Encode renders the action as a percent-escaped query string with sorted
// keys. It fails when the payload would exceed MaxPayloadBytes.
func (a Action) Encode() (string, error) {
	if a.Name == "" {
		return "", fmt.Errorf("cannot encode action without a name")
	}
	values := url.Values{"action": {a.Name}}
	for key, value := range a.Params {
		values.Set(key, value)
	}
	encoded := values.Encode()
	if len(encoded) > MaxPayloadBytes {
		return "", fmt.Errorf("postback payload for %s is %d bytes, exceeding the %d byte limit", a.Name, len(encoded), MaxPayloadBytes)
	}
	return encoded, nil
}

// Param returns the named parameter or the empty string.
func (a Action) Param(key string) string {
	return a.Params[key]
}

// Filter returns the named parameter as a search filter value. The second
// return is false when the parameter is absent or "all", meaning the filter
// clause should be omitted.
func (a Action) Filter(key string) (string, bool) {
	value, ok := a.Params[key]
	if !ok || value == "" || value == ValueAll {
		return value, false
	}
	return value, true
}
