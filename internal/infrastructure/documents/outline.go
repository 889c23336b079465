// Package documents renders the merged order into the document outline
// consumed by the PDF/contract collaborators.
package documents

import (
	"fmt"
	"sort"
	"strings"

	"kalkulacka/internal/domain/entities"
	"kalkulacka/internal/usecase/interfaces"
)

// Note labels as they appear in the generated document.
const (
	FormNoteLabel     = "Poznámka"
	PoptavkaNoteLabel = "Poznámka k poptávce"
)

// OutlineRenderer builds the document outline. Section order is fixed:
// identification first, then summary, then the contract block — the
// poptavka note therefore always precedes the form note in document order.
type OutlineRenderer struct{}

var _ interfaces.IDocumentRenderer = (*OutlineRenderer)(nil)

func NewOutlineRenderer() *OutlineRenderer {
	return &OutlineRenderer{}
}

func (r *OutlineRenderer) Render(order entities.MergedOrder) (entities.Document, error) {
	return entities.Document{
		Sections: []entities.Section{
			identificationSection(order),
			summarySection(order),
			contractSection(order),
		},
	}, nil
}

func identificationSection(order entities.MergedOrder) entities.Section {
	var lines []string
	if name := strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName); name != "" {
		lines = append(lines, name)
	}
	if order.Customer.Email != "" {
		lines = append(lines, order.Customer.Email)
	}
	if order.Poptavka.Phone != "" {
		lines = append(lines, order.Poptavka.Phone)
	}
	if addr := strings.TrimSpace(strings.Join(nonEmpty(
		order.Poptavka.Street, order.Poptavka.City, order.Poptavka.Zip), ", ")); addr != "" {
		lines = append(lines, addr)
	}
	if order.Poptavka.CompanyName != "" {
		lines = append(lines, order.Poptavka.CompanyName)
	}
	if order.Poptavka.CompanyID != "" {
		lines = append(lines, "IČO: "+order.Poptavka.CompanyID)
	}
	if order.Poptavka.VATID != "" {
		lines = append(lines, "DIČ: "+order.Poptavka.VATID)
	}
	if order.HasPoptavkaNote() {
		lines = append(lines, PoptavkaNoteLabel+": "+order.PoptavkaNote)
	}
	return entities.Section{Name: entities.SectionIdentification, Lines: lines}
}

func summarySection(order entities.MergedOrder) entities.Section {
	lines := []string{
		order.ServiceTitle,
		fmt.Sprintf("%.2f %s", order.TotalPrice, order.Currency),
	}
	keys := make([]string, 0, len(order.Answers))
	for k := range order.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, order.Answers[k]))
	}
	if order.HasFormNote() {
		lines = append(lines, FormNoteLabel+": "+order.FormNote)
	}
	return entities.Section{Name: entities.SectionSummary, Lines: lines}
}

func contractSection(order entities.MergedOrder) entities.Section {
	return entities.Section{
		Name: entities.SectionContract,
		Lines: []string{
			"Objednávka č. " + order.OrderID,
		},
	}
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
