package assistant

import "context"

// AssistantService wraps the Client. Failures of the external call are
// logged and reported as Available=false, never as errors.
type AssistantService interface {
	ExtractFromImage(ctx context.Context, req ExtractImageRequest) (ExtractionResponse, error)
	ExtractFromDocument(ctx context.Context, documentID string) (ExtractionResponse, error)
	Advise(ctx context.Context, req AdviceRequest) (AdviceResponse, error)
}
