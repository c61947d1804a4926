package service

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/constants"
)

// CloneOutputFormatter implements domain.CloneOutputFormatter, rendering
// a CloneResult as text, JSON, YAML, or CSV.
type CloneOutputFormatter struct {
	utils *FormatUtils
}

// NewCloneOutputFormatter creates a new clone output formatter.
func NewCloneOutputFormatter() *CloneOutputFormatter {
	return &CloneOutputFormatter{utils: NewFormatUtils()}
}

// FormatCloneResult implements domain.CloneOutputFormatter.
func (f *CloneOutputFormatter) FormatCloneResult(result *domain.CloneResult, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText, "":
		return f.formatAsText(result), nil
	case domain.OutputFormatJSON:
		return EncodeJSON(result)
	case domain.OutputFormatYAML:
		return EncodeYAML(result)
	case domain.OutputFormatCSV:
		return f.formatAsCSV(result)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *CloneOutputFormatter) formatAsText(result *domain.CloneResult) string {
	var b strings.Builder
	b.WriteString(f.utils.FormatMainHeader("Semantic Clone Detection Result"))
	b.WriteString(f.utils.FormatLabel("Benign", result.Benign))
	b.WriteString(f.utils.FormatLabel("Malicious", result.Malicious))
	b.WriteString(f.utils.FormatSectionSeparator())

	b.WriteString(f.utils.FormatSectionHeader("Summary"))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Clone groups", len(result.Similar)))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Dissimilar nodes", len(result.Dissimilar)))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Literal mismatches", len(result.PbTokens)))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Benign coverage",
		fmt.Sprintf("%s (%d/%d)", f.utils.FormatPercentage(percentOf(result.PercentBenign)), result.PercentBenign.Cloned, result.PercentBenign.Total)))
	b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Malicious coverage",
		fmt.Sprintf("%s (%d/%d)", f.utils.FormatPercentage(percentOf(result.PercentMalicious)), result.PercentMalicious.Cloned, result.PercentMalicious.Total)))
	b.WriteString(f.utils.FormatSectionSeparator())

	if len(result.Similar) == 0 {
		b.WriteString("No clones detected.\n")
		return b.String()
	}

	b.WriteString(f.utils.FormatSectionHeader("Clone Groups"))
	for i, group := range result.Similar {
		b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, fmt.Sprintf("Group %d", i+1), strings.Join(group, ", ")))
	}
	b.WriteString(f.utils.FormatSectionSeparator())

	if len(result.Dissimilar) > 0 {
		b.WriteString(f.utils.FormatSectionHeader("Dissimilar Nodes"))
		b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Nodes", strings.Join(result.Dissimilar, ", ")))
		b.WriteString(f.utils.FormatSectionSeparator())
	}

	if len(result.PbTokens) > 0 {
		b.WriteString(f.utils.FormatSectionHeader("Literal Mismatches"))
		for _, mismatch := range result.PbTokens {
			b.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "malicious/benign",
				fmt.Sprintf("%s (%s) / %s (%s)",
					mismatch.Malicious, literalKindName(mismatch.Malicious),
					mismatch.Benign, literalKindName(mismatch.Benign))))
		}
	}

	return b.String()
}

// literalKindName expands a short literal-type code (e.g. "Num") into
// the human-readable name constants.LiteralKindNames associates with it,
// falling back to the code itself for an unrecognized value.
func literalKindName(code string) string {
	if name, ok := constants.LiteralKindNames[domain.LiteralKind(code)]; ok {
		return name
	}
	return code
}

func percentOf(c domain.Coverage) float64 {
	if c.Total == 0 {
		return 0
	}
	return 100 * float64(c.Cloned) / float64(c.Total)
}

func (f *CloneOutputFormatter) formatAsCSV(result *domain.CloneResult) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"kind", "group_index", "value"}); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	for i, group := range result.Similar {
		for _, name := range group {
			if err := w.Write([]string{"similar", strconv.Itoa(i), name}); err != nil {
				return "", domain.NewOutputError("failed to write CSV record", err)
			}
		}
	}
	for _, name := range result.Dissimilar {
		if err := w.Write([]string{"dissimilar", "", name}); err != nil {
			return "", domain.NewOutputError("failed to write CSV record", err)
		}
	}
	for _, mismatch := range result.PbTokens {
		value := fmt.Sprintf("malicious=%s benign=%s", mismatch.Malicious, mismatch.Benign)
		if err := w.Write([]string{"pb_token", "", value}); err != nil {
			return "", domain.NewOutputError("failed to write CSV record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV", err)
	}
	return b.String(), nil
}
