// listingsctl is the operator CLI for the iwacu250 listings backend: public
// browsing of plots and houses, plus the admin back office (listing CRUD,
// media upload, inquiries, settings).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/iwacu250/listings-client/internal/auth"
	"github.com/iwacu250/listings-client/internal/core/domain"
	"github.com/iwacu250/listings-client/internal/core/ports"
	"github.com/iwacu250/listings-client/internal/core/service"
	"github.com/iwacu250/listings-client/internal/format"
	"github.com/iwacu250/listings-client/internal/infrastructure/config"
	"github.com/iwacu250/listings-client/internal/session"
	"github.com/iwacu250/listings-client/internal/transport"
	"github.com/iwacu250/listings-client/internal/whatsapp"
	"github.com/iwacu250/listings-client/pkg/logger"
)

const usage = `usage: listingsctl <command> [flags]

  login -u <username> [-p <password>]
  logout
  whoami
  plots list|get|create|update|delete|set-status|upload-image|upload-video
  houses list|get|search|create|update|delete|set-status|upload-image|upload-video
  inquire -name <n> -email <e> -message <m>
  inquiries [-page N] [-status S]
  settings get|set
  files list|upload|rm
  dashboard
  contact-link [-message <text>]
`

type app struct {
	guard     *auth.Guard
	manager   *auth.Manager
	store     session.Store
	plots     ports.PlotService
	houses    ports.HouseService
	contact   ports.ContactService
	settings  ports.SettingsService
	files     ports.FileService
	dashboard ports.DashboardService
	uploader  *service.BatchUploader
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	client := transport.New(cfg.BaseURL, cfg.RequestTimeout, store, log)
	manager := auth.NewManager(client, store, cfg.LoginRoute, log)
	manager.SetNavigateFunc(func(to, from string) {
		fmt.Fprintf(os.Stderr, "Session expired. Please log in again (was on %s, continue at %s).\n", from, to)
	})
	manager.Init()

	imageLimit := cfg.MaxImageMB * 1024 * 1024
	videoLimit := cfg.MaxVideoMB * 1024 * 1024
	files := service.NewFileService(client, log, imageLimit, videoLimit)

	a := &app{
		guard:     auth.NewGuard(manager),
		manager:   manager,
		store:     store,
		plots:     service.NewPlotService(client, log, imageLimit, videoLimit),
		houses:    service.NewHouseService(client, log, imageLimit, videoLimit),
		contact:   service.NewContactService(client, log),
		settings:  service.NewSettingsService(client, log),
		files:     files,
		dashboard: service.NewDashboardService(client, log),
		uploader:  service.NewBatchUploader(files, 0, log),
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		client, err := session.Connect(context.Background(), session.RedisConfig{
			Addr: cfg.Session.Redis.Addr,
			DB:   cfg.Session.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client), nil
	default:
		path := cfg.Session.Path
		if path == "" {
			path = session.DefaultPath()
		}
		return session.NewFileStore(path)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.manager.SetRoute("/admin")
		a.manager.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return a.whoami()
	case "plots":
		return a.plotsCmd(ctx, args)
	case "houses":
		return a.housesCmd(ctx, args)
	case "inquire":
		return a.inquire(ctx, args)
	case "inquiries":
		return a.inquiries(ctx, args)
	case "settings":
		return a.settingsCmd(ctx, args)
	case "files":
		return a.filesCmd(ctx, args)
	case "dashboard":
		return a.dashboardCmd(ctx)
	case "contact-link":
		return a.contactLink(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// requireAdmin runs the route guard for an admin view and reports denial
// the way the web app would: by naming the redirect target.
func (a *app) requireAdmin(route string) error {
	a.manager.SetRoute(route)
	decision := a.guard.Evaluate(route, domain.RoleAdmin)
	switch decision.State {
	case auth.StateAllowed:
		return nil
	case auth.StateChecking:
		return fmt.Errorf("auth state still loading")
	default:
		return fmt.Errorf("access to %s denied, continue at %s", decision.From, decision.Redirect)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password (falls back to LISTINGS_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		*password = os.Getenv("LISTINGS_PASSWORD")
	}

	a.manager.SetRoute("/login")
	user, err := a.manager.Login(ctx, auth.Credentials{Username: *username, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", user.Username)
	return nil
}

func (a *app) whoami() error {
	snap := a.manager.Snapshot()
	if snap.User == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("Username: %s\n", snap.User.Username)
	for _, role := range snap.User.Roles {
		fmt.Printf("Role:     %s\n", role.Name)
	}
	if claims, ok := session.PeekClaims(a.store.Token()); ok && !claims.ExpiresAt.IsZero() {
		fmt.Printf("Token expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func (a *app) plotsCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("plots: missing subcommand")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("plots list", flag.ExitOnError)
		page := fs.Int("page", 0, "page number")
		location := fs.String("location", "", "location filter")
		admin := fs.Bool("admin", false, "use the admin listing")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		params := ports.ListParams{Page: *page, Location: *location}
		var (
			result domain.Page[domain.Plot]
			err    error
		)
		if *admin {
			if err := a.requireAdmin("/admin/plots"); err != nil {
				return err
			}
			result, err = a.plots.AdminList(ctx, params)
		} else {
			result, err = a.plots.List(ctx, params)
		}
		if err != nil {
			return err
		}
		for _, p := range result.Content {
			fmt.Printf("%-6d %-30s %-15s %-12s %s\n",
				p.ID, p.Title, p.Location, format.Size(p.Size, p.SizeUnit), format.Price(p.Price, p.Currency))
		}
		fmt.Printf("page %d of %d (%d plots)\n", result.Number+1, result.TotalPages, result.TotalElements)
		return nil
	case "get":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		plot, err := a.plots.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(plot)
	case "create":
		if err := a.requireAdmin("/admin/plots/new"); err != nil {
			return err
		}
		input, err := readInput[ports.PlotInput](rest)
		if err != nil {
			return err
		}
		plot, err := a.plots.Create(ctx, *input)
		if err != nil {
			return err
		}
		return printJSON(plot)
	case "update":
		if err := a.requireAdmin("/admin/plots/edit"); err != nil {
			return err
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		input, err := readInput[ports.PlotInput](rest[1:])
		if err != nil {
			return err
		}
		plot, err := a.plots.Update(ctx, id, *input)
		if err != nil {
			return err
		}
		return printJSON(plot)
	case "delete":
		if err := a.requireAdmin("/admin/plots"); err != nil {
			return err
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := a.plots.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	case "set-status":
		if err := a.requireAdmin("/admin/plots"); err != nil {
			return err
		}
		if len(rest) < 2 {
			return fmt.Errorf("usage: plots set-status <id> <AVAILABLE|RESERVED|SOLD>")
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return a.plots.UpdateStatus(ctx, id, domain.ListingStatus(rest[1]))
	case "upload-image", "upload-video":
		if err := a.requireAdmin("/admin/plots/media"); err != nil {
			return err
		}
		if len(rest) < 2 {
			return fmt.Errorf("usage: plots %s <id> <file>", sub)
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		upload, cleanup, err := openUpload(rest[1])
		if err != nil {
			return err
		}
		defer cleanup()
		var media *domain.MediaFile
		if sub == "upload-video" {
			media, err = a.plots.UploadVideo(ctx, id, upload)
		} else {
			media, err = a.plots.UploadImage(ctx, id, upload)
		}
		if err != nil {
			return err
		}
		fmt.Println("Uploaded:", media.URL)
		return nil
	default:
		return fmt.Errorf("plots: unknown subcommand %q", sub)
	}
}

func (a *app) housesCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("houses: missing subcommand")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list", "search":
		fs := flag.NewFlagSet("houses "+sub, flag.ExitOnError)
		page := fs.Int("page", 0, "page number")
		location := fs.String("location", "", "location filter")
		bedrooms := fs.Int("bedrooms", 0, "minimum bedrooms")
		admin := fs.Bool("admin", false, "use the admin listing")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		params := ports.HouseListParams{
			ListParams: ports.ListParams{Page: *page, Location: *location},
			Bedrooms:   *bedrooms,
		}
		var (
			result domain.Page[domain.House]
			err    error
		)
		switch {
		case sub == "search":
			if err := a.requireAdmin("/admin/houses"); err != nil {
				return err
			}
			result, err = a.houses.Search(ctx, params)
		case *admin:
			if err := a.requireAdmin("/admin/houses"); err != nil {
				return err
			}
			result, err = a.houses.AdminList(ctx, params)
		default:
			result, err = a.houses.List(ctx, params)
		}
		if err != nil {
			return err
		}
		for _, h := range result.Content {
			fmt.Printf("%-6d %-30s %-15s %db/%db %s\n",
				h.ID, h.Title, h.Location, h.Bedrooms, h.Bathrooms, format.Price(h.Price, h.Currency))
		}
		fmt.Printf("page %d of %d (%d houses)\n", result.Number+1, result.TotalPages, result.TotalElements)
		return nil
	case "get":
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		house, err := a.houses.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(house)
	case "create":
		if err := a.requireAdmin("/admin/houses/new"); err != nil {
			return err
		}
		input, err := readInput[ports.HouseInput](rest)
		if err != nil {
			return err
		}
		house, err := a.houses.Create(ctx, *input)
		if err != nil {
			return err
		}
		return printJSON(house)
	case "update":
		if err := a.requireAdmin("/admin/houses/edit"); err != nil {
			return err
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		input, err := readInput[ports.HouseInput](rest[1:])
		if err != nil {
			return err
		}
		house, err := a.houses.Update(ctx, id, *input)
		if err != nil {
			return err
		}
		return printJSON(house)
	case "delete":
		if err := a.requireAdmin("/admin/houses"); err != nil {
			return err
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		if err := a.houses.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	case "set-status":
		if err := a.requireAdmin("/admin/houses"); err != nil {
			return err
		}
		if len(rest) < 2 {
			return fmt.Errorf("usage: houses set-status <id> <AVAILABLE|RESERVED|SOLD>")
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		return a.houses.UpdateStatus(ctx, id, domain.ListingStatus(rest[1]))
	case "upload-image", "upload-video":
		if err := a.requireAdmin("/admin/houses/media"); err != nil {
			return err
		}
		if len(rest) < 2 {
			return fmt.Errorf("usage: houses %s <id> <file>", sub)
		}
		id, err := idArg(rest)
		if err != nil {
			return err
		}
		upload, cleanup, err := openUpload(rest[1])
		if err != nil {
			return err
		}
		defer cleanup()
		var media *domain.MediaFile
		if sub == "upload-video" {
			media, err = a.houses.UploadVideo(ctx, id, upload)
		} else {
			media, err = a.houses.UploadImage(ctx, id, upload)
		}
		if err != nil {
			return err
		}
		fmt.Println("Uploaded:", media.URL)
		return nil
	default:
		return fmt.Errorf("houses: unknown subcommand %q", sub)
	}
}

func (a *app) inquire(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inquire", flag.ExitOnError)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	phone := fs.String("phone", "", "your phone")
	message := fs.String("message", "", "message text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	err := a.contact.SubmitInquiry(ctx, ports.InquiryInput{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Message: *message,
	})
	if err != nil {
		return err
	}
	fmt.Println("Your message has been sent. We will contact you soon.")
	return nil
}

func (a *app) inquiries(ctx context.Context, args []string) error {
	if err := a.requireAdmin("/admin/inquiries"); err != nil {
		return err
	}
	fs := flag.NewFlagSet("inquiries", flag.ExitOnError)
	page := fs.Int("page", 0, "page number")
	status := fs.String("status", "", "status filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	result, err := a.contact.Inquiries(ctx, ports.InquiryParams{Page: *page, Status: *status})
	if err != nil {
		return err
	}
	for _, inq := range result.Content {
		read := " "
		if !inq.IsRead {
			read = "*"
		}
		fmt.Printf("%s %-6d %-20s %-25s %s\n", read, inq.ID, inq.Name, inq.Email, format.Date(inq.CreatedAt))
	}
	fmt.Printf("page %d of %d (%d inquiries)\n", result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

func (a *app) settingsCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("settings: missing subcommand")
	}
	switch args[0] {
	case "get":
		settings, err := a.settings.Public(ctx)
		if err != nil {
			return err
		}
		return printJSON(settings)
	case "set":
		if err := a.requireAdmin("/admin/settings"); err != nil {
			return err
		}
		current, err := a.settings.All(ctx)
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("settings set", flag.ExitOnError)
		whats := fs.String("whatsapp", current.WhatsAppNumber, "whatsapp number")
		email := fs.String("email", current.CompanyEmail, "company email")
		phone := fs.String("phone", current.CompanyPhone, "company phone")
		address := fs.String("address", current.CompanyAddress, "company address")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		updated, err := a.settings.Update(ctx, domain.Settings{
			SiteName:       current.SiteName,
			WhatsAppNumber: *whats,
			CompanyEmail:   *email,
			CompanyPhone:   *phone,
			CompanyAddress: *address,
		})
		if err != nil {
			return err
		}
		return printJSON(updated)
	default:
		return fmt.Errorf("settings: unknown subcommand %q", args[0])
	}
}

func (a *app) filesCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("files: missing subcommand")
	}
	switch args[0] {
	case "list":
		files, err := a.files.List(ctx)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Printf("%-6d %-8s %s\n", f.ID, f.Type, f.URL)
		}
		return nil
	case "upload":
		if err := a.requireAdmin("/admin/media"); err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("usage: files upload <file> [file ...]")
		}
		failed := 0
		for _, result := range a.uploader.UploadAll(ctx, args[1:]) {
			if result.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s: %v\n", result.Path, result.Err)
				continue
			}
			fmt.Printf("%s -> %s\n", result.Path, result.Media.URL)
		}
		if failed > 0 {
			return fmt.Errorf("%d upload(s) failed", failed)
		}
		return nil
	case "rm":
		if err := a.requireAdmin("/admin/media"); err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("usage: files rm <path>")
		}
		return a.files.Delete(ctx, args[1])
	default:
		return fmt.Errorf("files: unknown subcommand %q", args[0])
	}
}

func (a *app) dashboardCmd(ctx context.Context) error {
	if err := a.requireAdmin("/admin"); err != nil {
		return err
	}
	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Plots:     %d\n", stats.TotalPlots)
	fmt.Printf("Houses:    %d\n", stats.TotalHouses)
	fmt.Printf("Inquiries: %d (%d unread)\n", stats.TotalInquiries, stats.UnreadInquiries)
	return nil
}

// contactLink prints a wa.me deep link for the site's WhatsApp number,
// prefilled with an inquiry message.
func (a *app) contactLink(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contact-link", flag.ExitOnError)
	message := fs.String("message", whatsapp.GeneralMessage(), "prefilled message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	settings, err := a.settings.Public(ctx)
	if err != nil {
		return err
	}
	if settings.WhatsAppNumber == "" {
		return fmt.Errorf("no whatsapp number configured")
	}
	fmt.Println(whatsapp.Link(settings.WhatsAppNumber, *message))
	return nil
}

// --- helpers ---

func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id argument")
	}
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// readInput decodes a JSON payload from the file named by -f, or stdin when
// the flag is "-" or absent.
func readInput[T any](args []string) (*T, error) {
	fs := flag.NewFlagSet("input", flag.ExitOnError)
	file := fs.String("f", "-", "JSON payload file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var reader *os.File
	if *file == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(*file)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	var out T
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &out, nil
}

func openUpload(path string) (ports.MediaUpload, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.MediaUpload{}, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return ports.MediaUpload{}, nil, err
	}
	upload := ports.MediaUpload{
		Filename: info.Name(),
		Reader:   f,
		Size:     info.Size(),
	}
	return upload, func() { _ = f.Close() }, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
