package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/allodocta/backoffice/internal/client/models"
)

func (a *App) execAds(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		ads, err := a.resources.Ads(ctx, url.Values{})
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(ads))
		for _, ad := range ads {
			rows = append(rows, []string{
				ad.ID, ad.Label, ad.Company, truncate(ad.Description, 40), yesNo(ad.IsActive),
			})
		}
		renderTable(a.out, []string{"ID", "LIBELLÉ", "SOCIÉTÉ", "DESCRIPTION", "ACTIVE"}, rows)
		return nil

	case "add", "create":
		payload, err := a.promptAd(ctx)
		if err != nil {
			return err
		}
		return a.report(a.resources.CreateAd(ctx, *payload))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.resources.UpdateAd(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.resources.DeleteAd(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) promptAd(ctx context.Context) (*models.AdPayload, error) {
	var p models.AdPayload
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Libellé", &p.Label},
		{"Société", &p.Company},
		{"Description", &p.Description},
		{"Lien du site", &p.WebsiteLink},
	}
	for _, pr := range prompts {
		value, err := GetSimpleText(a.reader, pr.label, a.out)
		if err != nil {
			return nil, err
		}
		*pr.dst = value
	}

	img, err := a.promptImage(ctx)
	if err != nil {
		return nil, err
	}
	p.Img = img
	return &p, nil
}

// promptImage optionally uploads a local image and returns its public URL.
// An empty path skips the upload.
func (a *App) promptImage(ctx context.Context) (string, error) {
	path, err := GetSimpleText(a.reader, "Image locale (vide pour ignorer)", a.out)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ouverture de l'image: %w", err)
	}
	defer f.Close()
	url, err := a.upload.Upload(ctx, path, f)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(a.out, "Image envoyée:", url)
	return url, nil
}

func (a *App) execArticles(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		articles, err := a.resources.Articles(ctx, url.Values{})
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(articles))
		for _, art := range articles {
			rows = append(rows, []string{
				art.ID, truncate(art.Title, 40), art.AuthorName, art.Type,
				yesNo(art.IsPublished), strconv.Itoa(len(art.Likes)),
			})
		}
		renderTable(a.out, []string{"ID", "TITRE", "AUTEUR", "TYPE", "PUBLIÉ", "J'AIME"}, rows)
		return nil

	case "add", "create":
		payload, err := a.promptArticle(ctx)
		if err != nil {
			return err
		}
		return a.report(a.resources.CreateArticle(ctx, *payload))

	case "publish", "unpublish":
		if len(args) == 0 {
			return fmt.Errorf("Usage: %s <id>", cmd)
		}
		fields := map[string]any{"isActive": cmd == "publish", "isPublished": cmd == "publish"}
		return a.report(a.resources.UpdateArticle(ctx, args[0], fields))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.resources.UpdateArticle(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.resources.DeleteArticle(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) promptArticle(ctx context.Context) (*models.ArticlePayload, error) {
	var p models.ArticlePayload
	title, err := GetSimpleText(a.reader, "Titre", a.out)
	if err != nil {
		return nil, err
	}
	p.Title = title
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return nil, err
	}
	p.Description = description
	content, err := GetMultiline(a.reader, "Contenu", a.out)
	if err != nil {
		return nil, err
	}
	p.Content = content

	img, err := a.promptImage(ctx)
	if err != nil {
		return nil, err
	}
	p.Img = img
	p.IsActive = true
	return &p, nil
}

func (a *App) execNotifications(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list", "l":
		page := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("numéro de page invalide: %s", args[0])
			}
			page = n
		}
		a.listNotifications(ctx, page)
		return nil

	case "send", "create":
		payload, err := a.promptNotification()
		if err != nil {
			return err
		}
		return a.report(a.resources.CreateNotification(ctx, *payload))

	case "set", "update":
		if len(args) < 2 {
			return fmt.Errorf("Usage: set <id> champ=valeur...")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.report(a.resources.UpdateNotification(ctx, args[0], fields))

	case "delete":
		if len(args) == 0 {
			return fmt.Errorf("Usage: delete <id>")
		}
		return a.report(a.resources.DeleteNotification(ctx, args[0]))

	default:
		return errUnknownCommand
	}
}

func (a *App) listNotifications(ctx context.Context, page int) {
	notifications, meta, err := a.resources.Notifications(ctx, defaultListLimit, page)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, []string{
			n.ID, truncate(n.Title, 30), truncate(n.Message, 50), n.CreatedAt,
		})
	}
	renderTable(a.out, []string{"ID", "TITRE", "MESSAGE", "DATE"}, rows)
	if meta != nil {
		fmt.Fprintf(a.out, "Page %d/%d (%d au total)\n", meta.Page, meta.TotalPages, meta.TotalItems)
	}
}

func (a *App) promptNotification() (*models.NotificationPayload, error) {
	var p models.NotificationPayload
	title, err := GetSimpleText(a.reader, "Titre", a.out)
	if err != nil {
		return nil, err
	}
	p.Title = title
	message, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return nil, err
	}
	p.Message = message
	link, err := GetSimpleText(a.reader, "Lien (vide pour ignorer)", a.out)
	if err != nil {
		return nil, err
	}
	p.Link = link
	return &p, nil
}
