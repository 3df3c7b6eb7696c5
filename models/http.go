package models

// Message is the uniform error (and occasional status) envelope returned by
// every endpoint. Clients can rely on the "message" field being present on
// any non-2xx response.
type Message struct {
	Message string `json:"message"`
}

// Banner is the payload of GET /. It points API explorers at the
// documentation and the main route sets.
type Banner struct {
	Message       string   `json:"message"`
	Clues         []string `json:"clues,omitempty"`
	Disclaimer    string   `json:"disclaimer,omitempty"`
	Documentation string   `json:"documentation"`
}

// ExternalIdentity is the normalized result of a third-party authentication
// strategy: whatever the provider returned, reduced to the attributes the
// application cares about.
type ExternalIdentity struct {
	// Provider is the strategy name that produced the identity.
	Provider string

	// ProviderID is the stable subject identifier within the provider.
	ProviderID string

	Email     string
	Name      string
	AvatarURL string
}
