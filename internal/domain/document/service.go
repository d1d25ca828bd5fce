package document

import (
	"context"
	"io"
)

type DocumentService interface {
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)
	GetDocument(ctx context.Context, id string) (DocumentResponse, error)
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]DocumentResponse, error)
	UpdateDocument(ctx context.Context, req UpdateDocumentRequest) (DocumentResponse, error)
	DeleteDocument(ctx context.Context, id string) error

	// AttachFile stores the uploaded file and links it to the document.
	// Images are downscaled before they are written.
	AttachFile(ctx context.Context, req AttachFileRequest) (DocumentResponse, error)

	// OpenFile returns the stored file of a document
	OpenFile(ctx context.Context, id string) (io.ReadCloser, string, error)

	// ListExpiring returns expired and expiring-soon documents as of today
	ListExpiring(ctx context.Context) ([]DocumentResponse, error)
}
