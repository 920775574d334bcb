package backend

// RequestSpec is a fully built inference request, ready to send.
type RequestSpec struct {
	URL  string
	Body map[string]any
}

// Adapter translates between prompts and one inference API's wire shape.
// The two local-server APIs differ only in their default request body and in
// where the generated text lives in the response, so each is a small Adapter
// behind the shared HTTP transport.
type Adapter interface {
	BuildRequest(prompt string, params map[string]any) (RequestSpec, error)
	ParseResponse(body []byte) (string, error)
}
