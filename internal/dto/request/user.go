package request

import "encoding/json"

// UpdateProfileRequest is a partial update. Name and age are the only
// updatable profile fields. Age is raw JSON so an absent field (leave
// untouched) can be told apart from an explicit null/"" (clear it).
type UpdateProfileRequest struct {
	Name *string         `json:"name,omitempty"`
	Age  json.RawMessage `json:"age,omitempty"`
}
