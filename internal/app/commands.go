// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-micropost/internal/logger"
	"github.com/MKhiriev/go-micropost/internal/service"
	"github.com/MKhiriev/go-micropost/internal/validators"
	"github.com/MKhiriev/go-micropost/models"
)

var errUsage = errors.New("usage")

// Migrator applies the database schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// Runner executes one CLI sub-command against the services.
type Runner struct {
	services *service.Services
	migrator Migrator
	out      io.Writer
	errOut   io.Writer
}

func NewRunner(services *service.Services, migrator Migrator, out, errOut io.Writer) *Runner {
	return &Runner{
		services: services,
		migrator: migrator,
		out:      out,
		errOut:   errOut,
	}
}

type command struct {
	usage string
	run   func(r *Runner, ctx context.Context, fs *flag.FlagSet, args []string) (any, error)
}

var commands = map[string]command{
	"migrate":      {usage: "migrate", run: (*Runner).migrate},
	"register":     {usage: "register -name N -email E -password P -confirmation P", run: (*Runner).register},
	"authenticate": {usage: "authenticate -email E -password P", run: (*Runner).authenticate},
	"show":         {usage: "show -user ID", run: (*Runner).show},
	"users":        {usage: "users [-page N]", run: (*Runner).users},
	"follow":       {usage: "follow -follower ID -followed ID", run: (*Runner).follow},
	"unfollow":     {usage: "unfollow -follower ID -followed ID", run: (*Runner).unfollow},
	"following":    {usage: "following -user ID [-page N]", run: (*Runner).following},
	"followers":    {usage: "followers -user ID [-page N]", run: (*Runner).followers},
	"post":         {usage: "post -user ID -content C", run: (*Runner).post},
	"delete-post":  {usage: "delete-post -user ID -id ID", run: (*Runner).deletePost},
	"microposts":   {usage: "microposts -user ID [-page N]", run: (*Runner).microposts},
	"feed":         {usage: "feed -user ID [-limit N -offset N]", run: (*Runner).feed},
	"delete-user":  {usage: "delete-user -actor ID -user ID", run: (*Runner).deleteUser},
	"grant-admin":  {usage: "grant-admin -user ID", run: (*Runner).grantAdmin},
}

// Usage lists every sub-command.
func Usage() string {
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		lines = append(lines, "  microblog [config flags] "+c.usage)
	}
	sort.Strings(lines)
	return "commands:\n" + strings.Join(lines, "\n")
}

// Run executes the sub-command named by args[0] and prints its result as
// JSON. On failure an error object is printed instead and the error is
// returned.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(r.errOut, Usage())
		return fmt.Errorf("%w: no command given", errUsage)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintln(r.errOut, Usage())
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(r.errOut)

	result, err := cmd.run(r, ctx, fs, args[1:])
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("command", args[0]).Msg("command failed")
		r.printError(err)
		return err
	}
	return r.print(result)
}

type errorOutput struct {
	Error  string                      `json:"error"`
	Fields validators.ValidationErrors `json:"fields,omitempty"`
}

func (r *Runner) printError(err error) {
	out := errorOutput{Error: ErrorMessage(err)}

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		out.Fields = verrs
	}
	_ = r.print(out)
}

func (r *Runner) print(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type status struct {
	Status string `json:"status"`
}

// registered exposes the remember token that models.User hides from JSON.
type registered struct {
	models.User
	RememberToken string `json:"remember_token"`
}

type profile struct {
	User       models.User `json:"user"`
	Microposts int64       `json:"microposts"`
	models.FollowCounts
}

func (r *Runner) migrate(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if err := r.migrator.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return status{Status: "migrated"}, nil
}

func (r *Runner) register(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var reg models.UserRegistration
	fs.StringVar(&reg.Name, "name", "", "user name")
	fs.StringVar(&reg.Email, "email", "", "user email")
	fs.StringVar(&reg.Password, "password", "", "password")
	fs.StringVar(&reg.PasswordConfirmation, "confirmation", "", "password confirmation")
	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}

	user, err := r.services.UserService.CreateUser(ctx, reg)
	if err != nil {
		return nil, err
	}
	return registered{User: user, RememberToken: user.RememberToken}, nil
}

func (r *Runner) authenticate(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	var creds models.Credentials
	fs.StringVar(&creds.Email, "email", "", "user email")
	fs.StringVar(&creds.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}

	return r.services.UserService.Authenticate(ctx, creds)
}

func (r *Runner) show(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "user id")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}

	user, err := r.services.UserService.GetUser(ctx, *userID)
	if err != nil {
		return nil, err
	}
	posts, err := r.services.MicropostService.CountMicroposts(ctx, *userID)
	if err != nil {
		return nil, err
	}
	counts, err := r.services.RelationshipService.Counts(ctx, *userID)
	if err != nil {
		return nil, err
	}
	return profile{User: user, Microposts: posts, FollowCounts: counts}, nil
}

func (r *Runner) users(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	page := fs.Uint64("page", 0, "page number, 0 lists everything")
	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	return r.services.UserService.ListUsers(ctx, pageOf(*page))
}

func (r *Runner) follow(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	followerID := fs.Int64("follower", 0, "follower user id")
	followedID := fs.Int64("followed", 0, "followed user id")
	if err := parseWithIDs(fs, args, "follower", "followed"); err != nil {
		return nil, err
	}

	if err := r.services.RelationshipService.Follow(ctx, *followerID, *followedID); err != nil {
		return nil, err
	}
	return status{Status: "following"}, nil
}

func (r *Runner) unfollow(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	followerID := fs.Int64("follower", 0, "follower user id")
	followedID := fs.Int64("followed", 0, "followed user id")
	if err := parseWithIDs(fs, args, "follower", "followed"); err != nil {
		return nil, err
	}

	if err := r.services.RelationshipService.Unfollow(ctx, *followerID, *followedID); err != nil {
		return nil, err
	}
	return status{Status: "unfollowed"}, nil
}

func (r *Runner) following(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "user id")
	page := fs.Uint64("page", 0, "page number, 0 lists everything")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}
	return r.services.RelationshipService.FollowedUsers(ctx, *userID, pageOf(*page))
}

func (r *Runner) followers(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "user id")
	page := fs.Uint64("page", 0, "page number, 0 lists everything")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}
	return r.services.RelationshipService.Followers(ctx, *userID, pageOf(*page))
}

func (r *Runner) post(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "author user id")
	var post models.NewMicropost
	fs.StringVar(&post.Content, "content", "", "micropost content")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}
	return r.services.MicropostService.CreateMicropost(ctx, *userID, post)
}

func (r *Runner) deletePost(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "author user id")
	micropostID := fs.Int64("id", 0, "micropost id")
	if err := parseWithIDs(fs, args, "user", "id"); err != nil {
		return nil, err
	}

	if err := r.services.MicropostService.DeleteMicropost(ctx, *userID, *micropostID); err != nil {
		return nil, err
	}
	return status{Status: "deleted"}, nil
}

func (r *Runner) microposts(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "author user id")
	page := fs.Uint64("page", 0, "page number, 0 lists everything")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}
	return r.services.MicropostService.UserMicroposts(ctx, *userID, pageOf(*page))
}

func (r *Runner) feed(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "user id")
	var page models.Page
	fs.Uint64Var(&page.Limit, "limit", 0, "max posts, 0 means no limit")
	fs.Uint64Var(&page.Offset, "offset", 0, "posts to skip")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}
	return r.services.FeedService.Feed(ctx, *userID, page)
}

func (r *Runner) deleteUser(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	actorID := fs.Int64("actor", 0, "id of the admin performing the deletion")
	userID := fs.Int64("user", 0, "id of the user to delete")
	if err := parseWithIDs(fs, args, "actor", "user"); err != nil {
		return nil, err
	}

	if err := r.services.UserService.DeleteUser(ctx, *actorID, *userID); err != nil {
		return nil, err
	}
	return status{Status: "deleted"}, nil
}

func (r *Runner) grantAdmin(ctx context.Context, fs *flag.FlagSet, args []string) (any, error) {
	userID := fs.Int64("user", 0, "user id")
	if err := parseWithIDs(fs, args, "user"); err != nil {
		return nil, err
	}

	if err := r.services.UserService.GrantAdmin(ctx, *userID); err != nil {
		return nil, err
	}
	return status{Status: "admin granted"}, nil
}

// parseWithIDs parses args and requires the named int64 flags to be
// positive.
func parseWithIDs(fs *flag.FlagSet, args []string, ids ...string) error {
	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}
	for _, name := range ids {
		if f := fs.Lookup(name); f == nil || f.Value.String() == "0" || strings.HasPrefix(f.Value.String(), "-") {
			return fmt.Errorf("%w: -%s must be a positive id", errUsage, name)
		}
	}
	return nil
}

func usageError(err error) error {
	return fmt.Errorf("%w: %w", errUsage, err)
}

func pageOf(n uint64) models.Page {
	if n == 0 {
		return models.Page{}
	}
	return models.PageNumber(n)
}
