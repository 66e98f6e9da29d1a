package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/models"
)

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email:", os.Stdout)
	if err != nil {
		log.Printf("Error reading email: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("Error reading password: %v", err)
		return
	}

	err = a.controller.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			log.Println("Invalid email or password")
		} else if errors.Is(err, common.ErrUnavailable) {
			log.Println("Auth service is unavailable, try again later")
		} else {
			log.Printf("Error signing in: %v", err)
		}
		return
	}

	log.Println("Signed in")
}

func (a *App) logout(ctx context.Context) {
	a.controller.SignOut(ctx)
	log.Println("Signed out")
}

func (a *App) whoami() {
	u := a.controller.CurrentUser()
	if u == nil {
		fmt.Printf("Not signed in (state: %s)\n", a.controller.State())
		return
	}
	fmt.Printf("ID:     %s\n", u.ID)
	fmt.Printf("Email:  %s\n", u.Email)
	if u.FullName != "" {
		fmt.Printf("Name:   %s\n", u.FullName)
	}
	fmt.Printf("Role:   %s\n", u.Role)
	fmt.Printf("Status: %s\n", u.Status)
	if !u.LastLogin.IsZero() {
		fmt.Printf("Last login: %s\n", u.LastLogin.Format("2006-01-02 15:04:05"))
	}
}

// can answers a permission query. With one argument it is a plain role check,
// with three it also consults resource ownership:
//
//	can EDIT_POSTS
//	can EDIT_OWN_POSTS post 42
func (a *App) can(ctx context.Context, args []string) {
	switch len(args) {
	case 1:
		fmt.Println(a.controller.HasPermission(args[0]))
	case 3:
		fmt.Println(a.controller.CanPerform(ctx, args[0], args[1], args[2]))
	default:
		fmt.Println("Usage: can <action> [<resource-type> <resource-id>]")
	}
}

func (a *App) quota() {
	u := a.controller.CurrentUser()
	if u == nil {
		fmt.Println("Not signed in")
		return
	}
	for _, kind := range []models.LimitKind{models.LimitAIAnalysis, models.LimitChatMessages, models.LimitExports} {
		limit := u.DailyLimits.Get(kind)
		used := u.UsageToday.Get(kind)
		if limit == models.Unlimited {
			fmt.Printf("%-14s %d used (unlimited)\n", kind, used)
		} else {
			fmt.Printf("%-14s %d of %d used\n", kind, used, limit)
		}
	}
}

func (a *App) use(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: use <aiAnalysis|chatMessages|exports>")
		return
	}
	kind := models.LimitKind(args[0])

	if !a.controller.CheckDailyLimit(kind) {
		log.Printf("Daily limit for %s reached", kind)
		return
	}
	if err := a.controller.IncrementUsage(ctx, kind); err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			log.Println("Not signed in")
		} else {
			log.Printf("Error recording usage: %v", err)
		}
		return
	}
	log.Printf("Recorded one %s use", kind)
}

func (a *App) export(ctx context.Context) {
	key, url, err := a.exports.RequestExport(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			log.Println("You are not allowed to export data")
		} else if errors.Is(err, common.ErrLimitExceeded) {
			log.Println("Daily export limit reached")
		} else {
			log.Printf("Error requesting export: %v", err)
		}
		return
	}
	fmt.Printf("Upload key: %s\n", key)
	fmt.Printf("Upload URL: %s\n", url)
}

func (a *App) refresh(ctx context.Context) {
	if err := a.controller.RefreshUser(ctx); err != nil {
		log.Printf("Error refreshing profile: %v", err)
		return
	}
	log.Println("Profile refreshed")
}
