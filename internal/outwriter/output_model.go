package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
)

// pillarOrder fixes the display order of pillar maps.
var pillarOrder = []schema.Pillar{schema.EnvironmentalPillar, schema.SocialPillar, schema.GovernancePillar}

// WriteModelDescription displays how scores are formed.
// This is a static display that does not require investor data.
func WriteModelDescription(model schema.ModelDescription, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVModel(w, model)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelText(w, model)
		}, "Wrote text")
	}
}

// writeCSVModel flattens the description into section/key/value rows.
func writeCSVModel(w io.Writer, model schema.ModelDescription) error {
	return writeCSVWithHeader(w, []string{"section", "key", "value"}, func(cw *csv.Writer) error {
		var rows [][]string
		for _, p := range pillarOrder {
			rows = append(rows, []string{"weight", string(p), strconv.FormatFloat(model.PillarWeights[p], 'f', 2, 64)})
		}
		for _, p := range pillarOrder {
			rows = append(rows, []string{"pillar", string(p), strings.Join(model.PillarKeys[p], "|")})
		}
		for _, b := range model.RatingBands {
			rows = append(rows, []string{"rating", string(b.Rating), strconv.Itoa(b.MinScore)})
		}
		for _, r := range model.Routes {
			rows = append(rows, []string{"route", strings.Join(r.Keywords, "|"), string(r.Target)})
		}
		for _, b := range model.Bonuses {
			rows = append(rows, []string{"bonus", b.Name, strconv.FormatFloat(b.Bonus, 'f', 0, 64)})
		}
		for i, a := range model.Adjustments {
			rows = append(rows, []string{"adjustment", strconv.Itoa(i + 1), a})
		}
		for _, s := range model.Sectors {
			rows = append(rows, []string{"sector", s, ""})
		}
		return cw.WriteAll(rows)
	})
}

func writeModelText(w io.Writer, model schema.ModelDescription) error {
	if err := writeLines(w, "🌍 "+model.Title, strings.Repeat("=", len(model.Title)+3), "", model.Description, ""); err != nil {
		return err
	}

	for _, p := range pillarOrder {
		line := fmt.Sprintf("%s (%.0f%%): mean of %s", strings.ToUpper(string(p)), model.PillarWeights[p]*100, strings.Join(model.PillarKeys[p], ", "))
		if err := writeLines(w, line); err != nil {
			return err
		}
	}
	if err := writeLines(w, ""); err != nil {
		return err
	}

	bands := make([][]string, 0, len(model.RatingBands))
	for _, b := range model.RatingBands {
		bands = append(bands, []string{string(b.Rating), "≥ " + strconv.Itoa(b.MinScore)})
	}
	if err := renderTable(w, []string{"Rating", "Overall"}, bands); err != nil {
		return err
	}

	bonuses := make([][]string, 0, len(model.Bonuses))
	for _, b := range model.Bonuses {
		bonuses = append(bonuses, []string{b.Name, "+" + strconv.FormatFloat(b.Bonus, 'f', 0, 64), routeTargetFor(b.Name, model.Routes)})
	}
	if err := renderTable(w, []string{"Certification", "Bonus", "Feeds"}, bonuses); err != nil {
		return err
	}
	if err := writeLines(w, "Other certifications get a bonus of "+strconv.FormatFloat(schema.DefaultCertificationBonus, 'f', 0, 64)+" and feed the sub-score their name routes to.", ""); err != nil {
		return err
	}

	if err := writeBulletList(w, "Adjustments", model.Adjustments); err != nil {
		return err
	}
	return writeBulletList(w, "Sectors with baselines", model.Sectors)
}

// routeTargetFor lists the sub-scores a certification name is routed to.
func routeTargetFor(name string, routes []schema.CertificationRoute) string {
	var targets []string
	for _, r := range routes {
		for _, kw := range r.Keywords {
			if strings.Contains(name, kw) {
				targets = append(targets, string(r.Target))
				break
			}
		}
	}
	if len(targets) == 0 {
		return "-"
	}
	return strings.Join(targets, ", ")
}
