package models

import "encoding/json"

type Channel struct {
	ID               string            `json:"_id"`
	Username         string            `json:"username"`
	FullName         string            `json:"fullName,omitempty"`
	Email            string            `json:"email,omitempty"`
	Avatar           string            `json:"avatar,omitempty"`
	CoverImage       string            `json:"coverImage,omitempty"`
	SubscribersCount *int              `json:"subscribersCount,omitempty"`
	Subscribers      []json.RawMessage `json:"subscribers,omitempty"`
	IsSubscribed     bool              `json:"isSubscribed,omitempty"`
}

// SubscriberTotal prefers the explicit count and falls back to the length
// of the subscribers list.
func (c *Channel) SubscriberTotal() int {
	if c.SubscribersCount != nil {
		return *c.SubscribersCount
	}
	return len(c.Subscribers)
}

type SubscriptionStatus struct {
	Subscribed       bool `json:"subscribed"`
	SubscribersCount *int `json:"subscribersCount,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
