package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/alumnihub/internal/common"
)

func (a *App) getStatus(ctx context.Context) string {
	u, err := a.session.Current(ctx)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

func (a *App) Root(ctx context.Context) {

	a.println("Welcome to the alumni console (type 'help' for commands)")

	for {
		a.printf("alumni %s> ", a.getStatus(ctx))
		line, readErr := a.reader.ReadString('\n')
		if readErr != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			a.help(ctx)
		case "register":
			err = a.register(ctx)
		case "login":
			err = a.login(ctx)
		case "logout":
			err = a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "profile":
			a.showProfile(ctx)
		case "update":
			err = a.updateProfile(ctx)
		case "network":
			err = a.showNetwork(ctx)
		case "stats":
			err = a.showStats(ctx)
		case "analytics":
			err = a.showAnalytics(ctx)
		case "inbox":
			err = a.showInbox(ctx)
		case "send":
			err = a.send(ctx, args)
		case "broadcast":
			err = a.broadcast(ctx)
		case "read":
			err = a.markRead(ctx, args)
		case "rm":
			err = a.deleteMessage(ctx, args)
		case "list":
			err = a.listAlumni(ctx, args)
		case "add":
			err = a.addAlumni(ctx)
		case "del":
			err = a.deleteAlumni(ctx, args)
		case "clear-data":
			err = a.clearAlumni(ctx)
		case "settings":
			err = a.adminSettings(ctx)
		case "export":
			err = a.exportMine(ctx)
		case "export-all":
			err = a.exportAll(ctx)
		case "backup":
			err = a.backup(ctx)
		case "dark":
			err = a.darkMode(ctx, args)
		case "delete-account":
			err = a.deleteAccount(ctx)
		case "watch":
			err = a.watch(ctx)
		case "exit", "quit":
			a.println("Bye!")
			return
		default:
			a.println("Unknown command:", cmd)
		}

		if err != nil {
			switch {
			case errors.Is(err, common.ErrorInvalidCredentials),
				errors.Is(err, common.ErrorDuplicateEmail),
				errors.Is(err, common.ErrorEmptyMessage),
				errors.Is(err, common.ErrorValidation):
				a.println(err.Error())
			default:
				a.log.Error(ctx, "command failed", "cmd", cmd, "err", err.Error())
				a.println("Something went wrong:", err.Error())
			}
		}
	}
}

func (a *App) help(ctx context.Context) {
	u, err := a.session.Current(ctx)
	if err != nil {
		a.println("Available commands: register, login, exit")
		return
	}
	if u.IsAdmin() {
		a.println("Available commands: list [page], add, del <id>, broadcast, settings,")
		a.println("  stats, analytics, export-all, backup, clear-data, inbox, send <email>,")
		a.println("  read <id>, rm <id>, dark on|off, watch, logout, exit")
		return
	}
	a.println("Available commands: profile, update, network, stats, inbox, send <email>,")
	a.println("  read <id>, rm <id>, export, dark on|off, delete-account, watch, logout, exit")
}
