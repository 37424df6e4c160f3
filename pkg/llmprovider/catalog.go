package llmprovider

const (
	ProviderOnDevice  = "ondevice"
	ProviderResponses = "responses"
	ProviderOllama    = "ollama"

	// DefaultProviderID is used whenever the active selection is unusable
	DefaultProviderID = ProviderOnDevice
)

var catalog = []Descriptor{
	{ID: ProviderOnDevice, DisplayName: "On-device", RequiresCredential: false, IsExternal: false},
	{ID: ProviderResponses, DisplayName: "Hosted API", RequiresCredential: true, IsExternal: true},
	{ID: ProviderOllama, DisplayName: "Ollama (local network)", RequiresCredential: false, IsExternal: false},
}

// Catalog returns every known backend kind in display order
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the descriptor for id
func Lookup(id string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
