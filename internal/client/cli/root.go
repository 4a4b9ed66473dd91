package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if email := a.store.ActiveUser(context.Background()); email != "" {
		s = email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Trattoria CLI (type 'help' for commands)")

	a.refreshMode(ctx)

	if a.isLoggedIn() && !a.store.IsOnboardingCompleted(ctx) {
		fmt.Println("Finish onboarding with the 'onboard' command")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
