package index

import (
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/model"
)

// DeriveDocumentEntry recomputes the search projection of a document from
// the system of record. It is idempotent; rewriting operations call it after
// every mutation instead of patching index rows field by field.
func DeriveDocumentEntry(doc *model.Document) *DocumentEntry {
	entry := &DocumentEntry{
		DocumentID:    doc.ID,
		Kind:          string(doc.Kind),
		Title:         doc.Title,
		TitleOther:    doc.TitleOther,
		Year:          doc.Year,
		JournalID:     doc.JournalID,
		ProceedingsID: doc.ProceedingsID,
		EventID:       doc.EventID,
	}

	var authors []string
	var claimers []string
	var ordinals []int
	for _, c := range doc.OrderedContributions() {
		if c.Type != model.ContributionAuthor {
			continue
		}
		if c.ApproveStatus == model.ApproveRequested {
			claimers = append(claimers, c.PersonID)
			ordinals = append(ordinals, c.OrderNumber)
			continue
		}
		// Contributions without a resolved person are external authors and
		// never appear as placeholders in the id list.
		if c.PersonID == "" || c.ApproveStatus == model.ApproveDeclined {
			continue
		}
		authors = append(authors, c.PersonID)
	}

	entry.SetAuthors(authors)
	// The lists are built in lockstep, so the length invariant always holds.
	_ = entry.SetClaimers(claimers, ordinals)

	return entry
}

// DerivePersonEntry recomputes the search projection of a person, including
// the denormalized employment institution ids.
func DerivePersonEntry(person *model.Person) *PersonEntry {
	entry := &PersonEntry{
		PersonID:  person.ID,
		Name:      person.Name,
		OtherName: person.OtherName,
	}

	var institutions []string
	seen := make(map[string]bool)
	for _, involvement := range person.Involvements {
		if involvement.Kind != model.InvolvementEmployment {
			continue
		}
		if involvement.OrganisationUnitID == "" || seen[involvement.OrganisationUnitID] {
			continue
		}
		seen[involvement.OrganisationUnitID] = true
		institutions = append(institutions, involvement.OrganisationUnitID)
	}
	entry.SetEmploymentInstitutions(institutions)

	return entry
}

// DeriveOrgUnitEntry recomputes the search projection of an organisation unit.
func DeriveOrgUnitEntry(unit *model.OrganisationUnit) *OrgUnitEntry {
	return &OrgUnitEntry{
		OrganisationUnitID: unit.ID,
		Name:               unit.Name,
		Acronym:            unit.Acronym,
	}
}
