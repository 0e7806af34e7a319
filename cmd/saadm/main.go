package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/term"

	"sportagency/internal/auth"
	"sportagency/internal/config"
	"sportagency/internal/db"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "user":
		userCmd(os.Args[2:])
	case "athlete":
		athleteCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println(`saadm - sportagency admin CLI

Usage:
  saadm user create <username> [-display "<name>"] [-role unverified|user|moderator|admin] [-config config.yaml] [-db postgres://...]
  saadm user promote <username> <role>              [-config config.yaml] [-db postgres://...]
  saadm athlete add <first> <last> -sport <code> [-position "<pos>"] [-team "<team>"] [-agent <username>] [-config config.yaml] [-db postgres://...]

Examples:
  saadm user create alice
  saadm user create bob -display "Bob Agent" -role moderator -config ./config.yaml
  saadm user promote alice user
  saadm athlete add Jordan Miles -sport nba -position "Point Guard" -team "Riverside Hawks" -agent alice`)
}

func userCmd(args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "create":
		userCreate(args[1:])
	case "promote":
		userPromote(args[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func userCreate(args []string) {
	fs := flag.NewFlagSet("user create", flag.ExitOnError)
	var (
		cfgPath     = fs.String("config", "config.yaml", "path to config file")
		dbOverride  = fs.String("db", "", "override database connection URL")
		displayName = fs.String("display", "", "display name (default: username)")
		role        = fs.String("role", "user", "role: unverified|user|moderator|admin")
	)
	_ = fs.Parse(reorderArgs(args))

	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Println("missing <username>")
		fmt.Println()
		usage()
		os.Exit(2)
	}
	username := strings.TrimSpace(rest[0])
	if username == "" {
		fmt.Println("username cannot be empty")
		os.Exit(2)
	}
	if *displayName == "" {
		*displayName = username
	}
	if !validRole(*role) {
		fmt.Println("invalid role; must be one of: unverified|user|moderator|admin")
		os.Exit(2)
	}

	ctx, pool := connect(*cfgPath, *dbOverride, 20*time.Second)
	defer pool.Close()

	pw := promptPassword("Password: ")
	pw2 := promptPassword("Confirm password: ")
	if pw != pw2 {
		fmt.Println("passwords do not match")
		os.Exit(1)
	}
	if len(pw) < 6 {
		fmt.Println("password too short (min 6 chars)")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(pw)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var id string
	err = pool.QueryRow(ctx, `
		insert into users (username, display_name, password_hash, role)
		values ($1, $2, $3, $4)
		returning id
	`, username, *displayName, hash, *role).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			log.Fatalf("create user: username %q already exists", username)
		}
		log.Fatalf("create user: %v", err)
	}
	fmt.Printf("ok: user created\n  id: %s\n  username: %s\n  role: %s\n", id, username, *role)
}

func userPromote(args []string) {
	fs := flag.NewFlagSet("user promote", flag.ExitOnError)
	var (
		cfgPath    = fs.String("config", "config.yaml", "path to config file")
		dbOverride = fs.String("db", "", "override database connection URL")
	)
	_ = fs.Parse(reorderArgs(args))

	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Println("usage: saadm user promote <username> <role>")
		os.Exit(2)
	}
	username := strings.TrimSpace(rest[0])
	role := strings.TrimSpace(rest[1])
	if !validRole(role) {
		fmt.Println("invalid role; must be one of: unverified|user|moderator|admin")
		os.Exit(2)
	}

	ctx, pool := connect(*cfgPath, *dbOverride, 20*time.Second)
	defer pool.Close()

	tag, err := pool.Exec(ctx, `update users set role = $2, updated_at = now() where username = $1`, username, role)
	if err != nil {
		log.Fatalf("promote user: %v", err)
	}
	if tag.RowsAffected() == 0 {
		log.Fatalf("promote user: user %q not found", username)
	}
	fmt.Printf("ok: %s is now %s\n", username, role)
}

func athleteCmd(args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "add":
		athleteAdd(args[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func athleteAdd(args []string) {
	fs := flag.NewFlagSet("athlete add", flag.ExitOnError)
	var (
		cfgPath    = fs.String("config", "config.yaml", "path to config file")
		dbOverride = fs.String("db", "", "override database connection URL")
		sport      = fs.String("sport", "", "sport code, e.g. nba|nfl|mlb|nhl")
		position   = fs.String("position", "", "playing position")
		team       = fs.String("team", "", "current team")
		agent      = fs.String("agent", "", "agent username to assign")
	)
	_ = fs.Parse(reorderArgs(args))

	rest := fs.Args()
	if len(rest) < 2 || *sport == "" {
		fmt.Println("usage: saadm athlete add <first> <last> -sport <code> [...]")
		os.Exit(2)
	}
	first := strings.TrimSpace(rest[0])
	last := strings.TrimSpace(rest[1])

	ctx, pool := connect(*cfgPath, *dbOverride, 20*time.Second)
	defer pool.Close()

	var agentID *string
	if *agent != "" {
		var id string
		err := pool.QueryRow(ctx, `select id from users where username = $1`, *agent).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				log.Fatalf("athlete add: agent %q not found", *agent)
			}
			log.Fatalf("athlete add: %v", err)
		}
		agentID = &id
	}

	var id string
	err := pool.QueryRow(ctx, `
		insert into athletes (first_name, last_name, sport, position, current_team, agent_user_id)
		values ($1, $2, lower($3), nullif($4, ''), nullif($5, ''), $6)
		returning id
	`, first, last, *sport, *position, *team, agentID).Scan(&id)
	if err != nil {
		log.Fatalf("athlete add: %v", err)
	}
	fmt.Printf("ok: athlete created\n  id: %s\n  name: %s %s\n  sport: %s\n", id, first, last, strings.ToLower(*sport))
}

func validRole(role string) bool {
	switch role {
	case "unverified", "user", "moderator", "admin":
		return true
	}
	return false
}

func connect(cfgPath, dbOverride string, timeout time.Duration) (context.Context, *pgxpool.Pool) {
	cfg, err := config.Load(cfgPath)
	if err != nil && cfg == nil {
		log.Fatalf("config: %v", err)
	}
	auth.SetSecret(cfg.Security.JWTSecret)

	url := strings.TrimSpace(dbOverride)
	if url == "" {
		url, err = cfg.Database.AppURL()
		if err != nil {
			log.Fatalf("db url: %v", err)
		}
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool, err := db.NewPool(dialCtx, url)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	return context.Background(), pool
}

func promptPassword(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("read password: %v", err)
	}
	return strings.TrimSpace(string(b))
}

func reorderArgs(args []string) []string {
	var flags []string
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg != "-" && arg != "--" && arg[0] == '-' {
			flags = append(flags, arg)
			if !strings.Contains(arg, "=") && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
				flags = append(flags, args[i+1])
				i++
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return append(flags, positional...)
}
