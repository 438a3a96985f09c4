package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"jotter/m/domain"
	"jotter/m/internal/client"
)

const usage = `usage: notesctl <command> [flags] [args]

commands:
  register [profile flags] <username>   create an account
  login <username>                      log in and remember the session
  logout                                forget the session
  whoami                                show the session claims
  profile                               show your profile
  profile-set [profile flags]           replace your profile
  list                                  list notes, newest first
  show <id>                             show one note
  add -title T -content C               create a note
  edit <id> -title T -content C [-done] replace a note
  done <id> | undone <id>               toggle completion
  rm <id>                               delete a note
`

type cli struct {
	tokens client.TokenFile
	out    io.Writer
	prompt func(label string) (string, error)
	api    *client.Client
}

func (c *cli) run(ctx context.Context, baseURL string, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return errors.New("missing command")
	}

	token, err := c.tokens.Load()
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	c.api = client.New(baseURL, client.WithToken(token))

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return c.register(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "logout":
		if err := c.tokens.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "logged out")
		return nil
	case "whoami":
		return c.whoami()
	case "profile":
		return c.profile(ctx)
	case "profile-set":
		return c.profileSet(ctx, rest)
	case "list":
		return c.list(ctx)
	case "show":
		return c.show(ctx, rest)
	case "add":
		return c.add(ctx, rest)
	case "edit":
		return c.edit(ctx, rest)
	case "done", "undone":
		return c.setDone(ctx, rest, cmd == "done")
	case "rm":
		return c.remove(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	}
	fmt.Fprint(c.out, usage)
	return fmt.Errorf("unknown command %q", cmd)
}

// profileFlags registers the seven profile attributes on fs.
func profileFlags(fs *flag.FlagSet) func() domain.Profile {
	name := fs.String("name", "", "full name")
	dob := fs.String("dob", "", "date of birth")
	sex := fs.String("sex", "", "sex")
	mobile := fs.String("mobile", "", "mobile number")
	address := fs.String("address", "", "postal address")
	pincode := fs.String("pincode", "", "postal code")
	userType := fs.String("type", "", "user type")
	return func() domain.Profile {
		return domain.Profile{
			Name:     optional(*name),
			DOB:      optional(*dob),
			Sex:      optional(*sex),
			Mobile:   optional(*mobile),
			Address:  optional(*address),
			Pincode:  optional(*pincode),
			UserType: optional(*userType),
		}
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (c *cli) password(given string) (string, error) {
	if given != "" {
		return given, nil
	}
	return c.prompt("password: ")
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(c.out)
	pw := fs.String("password", "", "password (prompted when empty)")
	profile := profileFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("register: expected <username>")
	}
	password, err := c.password(*pw)
	if err != nil {
		return err
	}
	id, err := c.api.Register(ctx, client.RegisterRequest{Username: fs.Arg(0), Password: password, Profile: profile()})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "registered %s (id %d)\n", fs.Arg(0), id)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(c.out)
	pw := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("login: expected <username>")
	}
	password, err := c.password(*pw)
	if err != nil {
		return err
	}
	token, err := c.api.Login(ctx, fs.Arg(0), password)
	if err != nil {
		return err
	}
	if err := c.tokens.Save(token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	fmt.Fprintf(c.out, "logged in as %s\n", fs.Arg(0))
	return nil
}

func (c *cli) whoami() error {
	claims, err := c.api.Session()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "id:        %d\n", claims.ID)
	fmt.Fprintf(c.out, "username:  %s\n", claims.Username)
	fmt.Fprintf(c.out, "name:      %s\n", deref(claims.Name))
	fmt.Fprintf(c.out, "user_type: %s\n", deref(claims.UserType))
	if claims.ExpiresAt != nil {
		fmt.Fprintf(c.out, "expires:   %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func (c *cli) profile(ctx context.Context) error {
	u, err := c.api.Profile(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%d\n", u.ID)
	fmt.Fprintf(w, "username\t%s\n", u.Username)
	fmt.Fprintf(w, "name\t%s\n", deref(u.Name))
	fmt.Fprintf(w, "dob\t%s\n", deref(u.DOB))
	fmt.Fprintf(w, "sex\t%s\n", deref(u.Sex))
	fmt.Fprintf(w, "mobile\t%s\n", deref(u.Mobile))
	fmt.Fprintf(w, "address\t%s\n", deref(u.Address))
	fmt.Fprintf(w, "pincode\t%s\n", deref(u.Pincode))
	fmt.Fprintf(w, "user_type\t%s\n", deref(u.UserType))
	return w.Flush()
}

func (c *cli) profileSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile-set", flag.ContinueOnError)
	fs.SetOutput(c.out)
	profile := profileFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.api.UpdateProfile(ctx, profile()); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "profile updated")
	return nil
}

func (c *cli) list(ctx context.Context) error {
	notes, err := c.api.ListNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(c.out, "no notes")
		return nil
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTITLE\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.ID, check(n.IsCompleted), n.Title, n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (c *cli) show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	n, err := c.api.GetNote(ctx, id)
	if err != nil {
		return err
	}
	printNote(c.out, n)
	return nil
}

func (c *cli) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.out)
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	n, err := c.api.CreateNote(ctx, *title, *content)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "created note %d\n", n.ID)
	return nil
}

func (c *cli) edit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	current, err := c.api.GetNote(ctx, id)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(c.out)
	title := fs.String("title", current.Title, "note title")
	content := fs.String("content", current.Content, "note body")
	done := fs.Bool("done", current.IsCompleted, "completed")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	n, err := c.api.UpdateNote(ctx, id, domain.NoteUpdate{Title: *title, Content: *content, IsCompleted: *done})
	if err != nil {
		return err
	}
	printNote(c.out, n)
	return nil
}

func (c *cli) setDone(ctx context.Context, args []string, done bool) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	current, err := c.api.GetNote(ctx, id)
	if err != nil {
		return err
	}
	n, err := c.api.UpdateNote(ctx, id, domain.NoteUpdate{Title: current.Title, Content: current.Content, IsCompleted: done})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "note %d %s\n", n.ID, map[bool]string{true: "completed", false: "reopened"}[n.IsCompleted])
	return nil
}

func (c *cli) remove(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := c.api.DeleteNote(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "deleted note %d\n", id)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errors.New("expected a note id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", args[0])
	}
	return id, nil
}

func printNote(w io.Writer, n *domain.Note) {
	fmt.Fprintf(w, "#%d [%s] %s\n", n.ID, check(n.IsCompleted), n.Title)
	fmt.Fprintf(w, "created %s, updated %s\n\n", n.CreatedAt.Local().Format(time.RFC1123), n.UpdatedAt.Local().Format(time.RFC1123))
	fmt.Fprintln(w, n.Content)
}

func check(done bool) string {
	if done {
		return "x"
	}
	return " "
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
