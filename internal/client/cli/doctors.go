package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/allodocta/backoffice/internal/client/models"
)

const defaultListLimit = 20

// parseLimit reads an optional numeric argument, falling back to the
// screen default.
func parseLimit(args []string) int {
	if len(args) == 0 {
		return defaultListLimit
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return defaultListLimit
	}
	return n
}

func (a *App) execDoctors(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		doctors, err := a.doctors.Doctors(ctx, parseLimit(args))
		if err != nil {
			return err
		}
		a.renderDoctors(doctors)
		return nil

	case "page":
		if len(args) == 0 {
			return fmt.Errorf("Usage: page <n> [limite]")
		}
		page, err := strconv.Atoi(args[0])
		if err != nil || page <= 0 {
			return fmt.Errorf("numéro de page invalide: %s", args[0])
		}
		doctors, meta, err := a.doctors.DoctorsPaginated(ctx, parseLimit(args[1:]), page)
		if err != nil {
			return err
		}
		a.renderDoctors(doctors)
		if meta != nil {
			fmt.Fprintf(a.out, "Page %d/%d (%d au total)\n", meta.Page, meta.TotalPages, meta.TotalItems)
		}
		return nil

	case "find":
		query, err := parseQuery(args)
		if err != nil {
			return err
		}
		doctors, err := a.doctors.DoctorsWithParams(ctx, query)
		if err != nil {
			return err
		}
		a.renderDoctors(doctors)
		return nil

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.doctors.UpdateDoctor(ctx, args[0], fields))

	case "activate", "deactivate":
		if len(args) == 0 {
			return fmt.Errorf("Usage: %s <id>", cmd)
		}
		fields := map[string]any{"isActive": cmd == "activate"}
		return a.report(a.doctors.UpdateDoctor(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.doctors.DeleteDoctor(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) renderDoctors(doctors []models.Doctor) {
	rows := make([][]string, 0, len(doctors))
	for _, d := range doctors {
		rows = append(rows, []string{
			d.ID, d.FirstName + " " + d.LastName, d.Email, d.Speciality,
			d.City, d.KycStatus, yesNo(d.IsActive),
		})
	}
	renderTable(a.out, []string{"ID", "NOM", "EMAIL", "SPÉCIALITÉ", "VILLE", "KYC", "ACTIF"}, rows)
}

func (a *App) execSpecialities(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		specs, err := a.doctors.Specialities(ctx, parseLimit(args))
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(specs))
		for _, s := range specs {
			rows = append(rows, []string{s.ID, s.Name})
		}
		renderTable(a.out, []string{"ID", "NOM"}, rows)
		return nil

	case "add", "create":
		if len(args) == 0 {
			return fmt.Errorf("Usage: add <nom>")
		}
		payload := models.SpecialityPayload{Name: strings.Join(args, " ")}
		return a.report(a.doctors.CreateSpeciality(ctx, payload))

	case "rename":
		if len(args) < 2 {
			return fmt.Errorf("Usage: rename <id> <nom>")
		}
		fields := map[string]any{"name": strings.Join(args[1:], " ")}
		return a.report(a.doctors.UpdateSpeciality(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.doctors.DeleteSpeciality(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) execKycRequests(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		status := "pending"
		if len(args) > 0 {
			status = args[0]
		}
		reqs, err := a.doctors.KycRequests(ctx, defaultListLimit, status)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(reqs))
		for _, r := range reqs {
			rows = append(rows, []string{
				r.ID, r.FirstName + " " + r.LastName, r.DocumentType,
				r.DocumentNumber, r.Status,
			})
		}
		renderTable(a.out, []string{"ID", "NOM", "DOCUMENT", "NUMÉRO", "STATUT"}, rows)
		return nil

	case "approve", "reject":
		if len(args) == 0 {
			return fmt.Errorf("Usage: %s <id>", cmd)
		}
		fields := map[string]any{"status": statusFor(cmd)}
		return a.report(a.doctors.UpdateKycRequest(ctx, args[0], fields))

	default:
		return errUnknownCommand
	}
}

func (a *App) execDeletionRequests(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		status := "pending"
		if len(args) > 0 {
			status = args[0]
		}
		reqs, err := a.doctors.DeletionRequests(ctx, defaultListLimit, status)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(reqs))
		for _, r := range reqs {
			rows = append(rows, []string{
				r.ID, r.FirstName + " " + r.LastName, r.Email,
				truncate(r.Reason, 40), r.Status,
			})
		}
		renderTable(a.out, []string{"ID", "NOM", "EMAIL", "MOTIF", "STATUT"}, rows)
		return nil

	case "approve", "reject":
		if len(args) == 0 {
			return fmt.Errorf("Usage: %s <id>", cmd)
		}
		fields := map[string]any{"status": statusFor(cmd)}
		return a.report(a.doctors.UpdateDeletionRequest(ctx, args[0], fields))

	default:
		return errUnknownCommand
	}
}

func statusFor(cmd string) string {
	if cmd == "approve" {
		return "approved"
	}
	return "rejected"
}

// report prints the server's confirmation message for a write operation.
func (a *App) report(message string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, message)
	return nil
}

// parseQuery turns "key=value" arguments into URL query parameters.
func parseQuery(args []string) (url.Values, error) {
	query := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument invalide %q, format attendu: champ=valeur", arg)
		}
		query.Set(key, value)
	}
	return query, nil
}
