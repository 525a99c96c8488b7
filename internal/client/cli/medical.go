package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/allodocta/backoffice/internal/client/models"
)

func (a *App) execPharmacies(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		query, err := parseQuery(args)
		if err != nil {
			return err
		}
		pharmacies, err := a.medical.Pharmacies(ctx, query)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(pharmacies))
		for _, p := range pharmacies {
			rows = append(rows, []string{
				p.ID, p.Code, p.Name, p.Area, p.Section, p.Phone, yesNo(p.IsGuard),
			})
		}
		renderTable(a.out, []string{"ID", "CODE", "NOM", "ZONE", "SECTION", "TÉLÉPHONE", "GARDE"}, rows)
		return nil

	case "add", "create":
		payload, err := a.promptPharmacy()
		if err != nil {
			return err
		}
		return a.report(a.medical.CreatePharmacy(ctx, *payload))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.medical.UpdatePharmacy(ctx, args[0], fields))

	case "guard":
		if len(args) < 2 {
			return fmt.Errorf("Usage: guard <période> <code,code,...>")
		}
		fields := map[string]any{
			"guardPeriod": args[0],
			"codes":       strings.Split(args[1], ","),
		}
		return a.report(a.medical.UpdateGuardPharmacy(ctx, fields))

	case "areas":
		areas, err := a.medical.Areas(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(areas))
		for _, ar := range areas {
			rows = append(rows, []string{ar.ID, ar.Name, ar.Section})
		}
		renderTable(a.out, []string{"ID", "NOM", "SECTION"}, rows)
		return nil

	case "sections":
		sections, err := a.medical.Sections(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(sections))
		for _, s := range sections {
			rows = append(rows, []string{s.ID, s.Name})
		}
		renderTable(a.out, []string{"ID", "NOM"}, rows)
		return nil

	case "export":
		out := io.Writer(a.out)
		if len(args) > 0 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("création du fichier: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := a.exportPharmacies(ctx, out); err != nil {
			return err
		}
		if len(args) > 0 {
			fmt.Fprintln(a.out, "Export écrit dans", args[0])
		}
		return nil

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.medical.DeletePharmacy(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) promptPharmacy() (*models.PharmacyPayload, error) {
	var p models.PharmacyPayload
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Nom", &p.Name},
		{"Zone", &p.Area},
		{"Section", &p.Section},
		{"Adresse", &p.Address},
		{"Téléphone", &p.Phone},
		{"Propriétaire", &p.Owner},
	}
	for _, pr := range prompts {
		value, err := GetSimpleText(a.reader, pr.label, a.out)
		if err != nil {
			return nil, err
		}
		*pr.dst = value
	}

	for _, coord := range []struct {
		label string
		dst   *float64
	}{{"Latitude", &p.Lat}, {"Longitude", &p.Lng}} {
		raw, err := GetSimpleText(a.reader, coord.label, a.out)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("coordonnée invalide: %s", raw)
		}
		*coord.dst = v
	}
	return &p, nil
}

// exportPharmacies writes the export feed as CSV, one row per pharmacy.
func (a *App) exportPharmacies(ctx context.Context, w io.Writer) error {
	rows, err := a.medical.PharmaciesForExport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "name", "section", "area", "address", "lng", "lat", "phone", "owner", "isGuard"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Code, r.Name, r.Section, r.Area, r.Address,
			strconv.FormatFloat(r.Lng, 'f', -1, 64),
			strconv.FormatFloat(r.Lat, 'f', -1, 64),
			r.Phone, r.Owner, strconv.FormatBool(r.IsGuard),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (a *App) execMedecines(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		query, err := parseQuery(args)
		if err != nil {
			return err
		}
		medecines, err := a.medical.Medecines(ctx, query)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(medecines))
		for _, m := range medecines {
			rows = append(rows, []string{
				m.ID, m.Code, m.Name, m.DCI, m.Group, m.Category, m.Regime,
				strconv.FormatFloat(m.Price, 'f', 2, 64),
			})
		}
		renderTable(a.out, []string{"ID", "CODE", "NOM", "DCI", "GROUPE", "CATÉGORIE", "RÉGIME", "PRIX"}, rows)
		return nil

	case "attributes":
		attrs, err := a.medical.MedecineAttributes(ctx)
		if err != nil {
			return err
		}
		renderTable(a.out, []string{"ATTRIBUT", "VALEURS"}, [][]string{
			{"DCI", strings.Join(attrs.DCIs, ", ")},
			{"Catégories", strings.Join(attrs.Categories, ", ")},
			{"Groupes", strings.Join(attrs.Groups, ", ")},
			{"Régimes", strings.Join(attrs.Regimes, ", ")},
		})
		return nil

	case "add", "create":
		payload, err := a.promptMedecine()
		if err != nil {
			return err
		}
		return a.report(a.medical.CreateMedecine(ctx, *payload))

	case "import":
		if len(args) == 0 {
			return fmt.Errorf("Usage: import <fichier.csv>")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("ouverture du fichier: %w", err)
		}
		defer f.Close()
		payloads, err := readMedecineCSV(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Import de %d médicaments...\n", len(payloads))
		return a.report(a.medical.CreateMedecineBulk(ctx, payloads))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.medical.UpdateMedecine(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.medical.DeleteMedecine(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) promptMedecine() (*models.MedecinePayload, error) {
	var m models.MedecinePayload
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Code", &m.Code},
		{"Nom", &m.Name},
		{"DCI", &m.DCI},
		{"Groupe", &m.Group},
		{"Catégorie", &m.Category},
		{"Régime", &m.Regime},
	}
	for _, pr := range prompts {
		value, err := GetSimpleText(a.reader, pr.label, a.out)
		if err != nil {
			return nil, err
		}
		*pr.dst = value
	}
	raw, err := GetSimpleText(a.reader, "Prix", a.out)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("prix invalide: %s", raw)
		}
		m.Price = price
	}
	return &m, nil
}

// readMedecineCSV parses a bulk-import file. Expected columns:
// code,name,dci,group,category,regime,price. A header row is detected by
// its first cell and skipped.
func readMedecineCSV(r io.Reader) ([]models.MedecinePayload, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 7

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lecture du CSV: %w", err)
	}

	payloads := make([]models.MedecinePayload, 0, len(records))
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "code") {
			continue
		}
		price, err := strconv.ParseFloat(rec[6], 64)
		if err != nil {
			return nil, fmt.Errorf("ligne %d: prix invalide %q", i+1, rec[6])
		}
		payloads = append(payloads, models.MedecinePayload{
			Code:     rec[0],
			Name:     rec[1],
			DCI:      rec[2],
			Group:    rec[3],
			Category: rec[4],
			Regime:   rec[5],
			Price:    price,
		})
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("aucune ligne à importer")
	}
	return payloads, nil
}
