package interfaces

import "kalkulacka/internal/domain/entities"

// IDocumentRenderer turns the merged order into the document outline sent to
// the PDF/contract collaborators. The merged record is the renderer's sole
// input; note placement follows its named note slots.
type IDocumentRenderer interface {
	Render(order entities.MergedOrder) (entities.Document, error)
}
