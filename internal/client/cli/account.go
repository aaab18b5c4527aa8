package cli

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/influeapp/influe-cli/internal/client/api"
)

// creditPackages are the purchasable bundle sizes.
var creditPackages = map[int]bool{10: true, 20: true, 50: true}

// Credits re-fetches and shows the current credit counts.
func (a *App) Credits(ctx context.Context) error {
	a.refreshCredits(ctx)
	return nil
}

// Profile shows the account state and recent analyses.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}
	a.view.History(p)
	return nil
}

// Buy starts a credit purchase. The login gate decides whether to prompt for
// authentication first; a 401 from the purchase itself does the same.
func (a *App) Buy(ctx context.Context) error {
	release, ok := a.beginOp()
	if !ok {
		return nil
	}
	defer release()

	decision, err := a.client.GateLogin(ctx)
	if err == nil && decision.Verdict() == api.VerdictLogin {
		a.view.LoginPrompt()
		return nil
	}

	raw, err := getSimpleText(a.reader, "Package size (10, 20 or 50)", os.Stdout)
	if err != nil {
		return err
	}
	pkg, err := strconv.Atoi(raw)
	if err != nil || !creditPackages[pkg] {
		a.view.Error("choose a package of 10, 20 or 50 credits")
		return nil
	}

	if err := a.client.Purchase(ctx, pkg); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.view.LoginPrompt()
			return nil
		}
		a.view.Error(err.Error())
		return err
	}

	a.view.Success("Checkout started. Credits are added once payment completes.")
	a.refreshCredits(ctx)
	return nil
}

// Privacy prints the server's data-retention policy.
func (a *App) Privacy(ctx context.Context) error {
	policy, err := a.client.Privacy(ctx)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}
	a.view.Info(policy)
	return nil
}
