package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
	"github.com/winjahq/winja-go/adminview"
	"github.com/winjahq/winja-go/internal/config"
	"github.com/winjahq/winja-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Provide()
	if err != nil {
		return err
	}

	zlog, err := logger.Provide(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer zlog.Sync()

	store, err := winja.NewSessionStore(cfg.SessionPath)
	if err != nil {
		return err
	}

	options := []winja.ClientOption{
		winja.WithBaseURL(cfg.BaseURL),
		winja.WithTokenSource(store.TokenSource()),
		winja.WithTimeout(cfg.RequestTimeout),
		winja.WithLogger(zlog),
	}
	if cfg.Retry {
		options = append(options, winja.WithRetry())
	}

	client, err := winja.NewClient(options...)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if err := ensureSession(ctx, client, store, cfg, zlog); err != nil {
		return err
	}

	dashboard := adminview.NewDashboardView(client, zlog)
	dashboard.Load(ctx)

	kpis := dashboard.KPIs()
	fmt.Printf("Opportunities: %d total, %d active, %d pending\n",
		kpis.TotalOpportunities, kpis.ActiveOpportunities, kpis.PendingOpportunities)
	fmt.Printf("Users: %d total, %d active\n", kpis.TotalUsers, kpis.ActiveUsers)
	fmt.Printf("Saved: %d  Referrals: %d  Revenue: %.2f\n",
		kpis.SavedOpportunities, kpis.Referrals, kpis.Revenue)

	reportSection("listings", dashboard.Listings.Err)
	reportSection("listing stats", dashboard.ListingStats.Err)
	reportSection("accounts", dashboard.Accounts.Err)
	reportSection("engagement", dashboard.Engagement.Err)
	reportSection("saved", dashboard.Saved.Err)
	reportSection("referrals", dashboard.Referrals.Err)
	reportSection("revenue", dashboard.Revenue.Err)
	reportSection("trends", dashboard.Trends.Err)
	reportSection("activity", dashboard.Activity.Err)
	reportSection("notifications", dashboard.Notifications.Err)

	return nil
}

// ensureSession reuses a stored, unexpired session when one exists and logs
// in with the configured credentials otherwise.
func ensureSession(ctx context.Context, client winja.Client, store *winja.SessionStore, cfg *config.Config, zlog *zap.Logger) error {
	session, err := store.Load()
	if err == nil && !session.Expired() {
		zlog.Debug("reusing stored session", zap.String("email", session.User.Email))
		return nil
	}

	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("no stored session and no credentials: set WINJA_EMAIL and WINJA_PASSWORD")
	}

	session, err = client.Login(ctx, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := store.Save(session); err != nil {
		return err
	}
	zlog.Debug("logged in", zap.String("email", session.User.Email))
	return nil
}

func reportSection(name string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s failed to load: %v\n", name, err)
	}
}
