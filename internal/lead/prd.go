package lead

import (
	"strings"
	"time"

	"github.com/vibes-run/leadchat/internal/domain"
)

func orNotProvided(s *string) string {
	if s == nil || *s == "" {
		return "Not provided"
	}
	return *s
}

// GeneratePRD renders the extracted lead as a markdown requirements draft.
// Sections whose field is null are omitted; the contact section is always
// present. The render is deterministic for a given lead and date.
func GeneratePRD(lead domain.ExtractedLead, generatedOn time.Time) string {
	var sections []string

	sections = append(sections, "# Project Requirements Draft\n")
	sections = append(sections, "*Generated from conversation on "+generatedOn.Format("1/2/2006")+"*\n")

	optional := []struct {
		heading string
		value   *string
	}{
		{"## Overview\n", lead.ProjectSummary},
		{"## Problem Statement\n", lead.Problem},
		{"## Vision / Success Criteria\n", lead.Vision},
		{"## Target Users\n", lead.Users},
		{"## Key Capabilities\n", lead.Capabilities},
		{"## Constraints & Requirements\n", lead.Constraints},
	}
	for _, s := range optional {
		if s.value != nil && *s.value != "" {
			sections = append(sections, s.heading, *s.value+"\n")
		}
	}

	sections = append(sections, "## Contact Information\n")
	sections = append(sections, "- **Name:** "+orNotProvided(lead.Name))
	sections = append(sections, "- **Email:** "+orNotProvided(lead.Email))
	sections = append(sections, "- **Company:** "+orNotProvided(lead.Company))

	return strings.Join(sections, "\n")
}
