package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/allodocta/backoffice/internal/client/models"
)

func (a *App) execDistricts(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		districts, err := a.location.Districts(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(districts))
		for _, d := range districts {
			rows = append(rows, []string{d.ID, d.Name})
		}
		renderTable(a.out, []string{"ID", "NOM"}, rows)
		return nil

	case "add", "create":
		if len(args) == 0 {
			return fmt.Errorf("Usage: add <nom>")
		}
		payload := models.DistrictPayload{Name: strings.Join(args, " ")}
		return a.report(a.location.CreateDistrict(ctx, payload))

	case "rename":
		if len(args) < 2 {
			return fmt.Errorf("Usage: rename <id> <nom>")
		}
		fields := map[string]any{"name": strings.Join(args[1:], " ")}
		return a.report(a.location.UpdateDistrict(ctx, args[0], fields))

	default:
		return errUnknownCommand
	}
}

func (a *App) execRegions(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		regions, err := a.location.Regions(ctx, defaultListLimit, name)
		if err != nil {
			return err
		}
		// Region rows reference their district by id; resolve the labels so
		// the operator does not have to cross the screens by hand.
		districts, err := a.location.Districts(ctx)
		if err != nil {
			return err
		}
		labels := make(map[string]string, len(districts))
		for _, d := range districts {
			labels[d.ID] = d.Name
		}
		rows := make([][]string, 0, len(regions))
		for _, r := range regions {
			rows = append(rows, []string{r.ID, r.Name, labelOr(labels, r.District)})
		}
		renderTable(a.out, []string{"ID", "NOM", "DISTRICT"}, rows)
		return nil

	case "add", "create":
		name, err := GetSimpleText(a.reader, "Nom de la région", a.out)
		if err != nil {
			return err
		}
		district, err := GetSimpleText(a.reader, "Id du district parent", a.out)
		if err != nil {
			return err
		}
		payload := models.RegionPayload{Name: name, District: district}
		return a.report(a.location.CreateRegion(ctx, payload))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.location.UpdateRegion(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.location.DeleteRegion(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) execCities(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		cities, err := a.location.Cities(ctx, defaultListLimit, name)
		if err != nil {
			return err
		}
		return a.renderCities(ctx, cities)

	case "region":
		if len(args) == 0 {
			return fmt.Errorf("Usage: region <nom>")
		}
		cities, err := a.location.CitiesForRegion(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return a.renderCities(ctx, cities)

	case "add", "create":
		name, err := GetSimpleText(a.reader, "Nom de la ville", a.out)
		if err != nil {
			return err
		}
		region, err := GetSimpleText(a.reader, "Id de la région parente", a.out)
		if err != nil {
			return err
		}
		payload := models.CityPayload{Name: name, Region: region}
		return a.report(a.location.CreateCity(ctx, payload))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.location.UpdateCity(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.location.DeleteCity(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) renderCities(ctx context.Context, cities []models.City) error {
	regions, err := a.location.Regions(ctx, 1000, "")
	if err != nil {
		return err
	}
	labels := make(map[string]string, len(regions))
	for _, r := range regions {
		labels[r.ID] = r.Name
	}
	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{c.ID, c.Name, labelOr(labels, c.Region)})
	}
	renderTable(a.out, []string{"ID", "NOM", "RÉGION"}, rows)
	return nil
}

// labelOr resolves a referenced id to its label, keeping a visible
// placeholder when the parent record is missing.
func labelOr(labels map[string]string, id string) string {
	if label, ok := labels[id]; ok {
		return label
	}
	if id == "" {
		return "-"
	}
	return id + " (?)"
}
