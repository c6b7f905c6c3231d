package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	temporalclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/juzbuild/juzbuild/internal/activity"
	"github.com/juzbuild/juzbuild/internal/archive"
	"github.com/juzbuild/juzbuild/internal/codehost"
	"github.com/juzbuild/juzbuild/internal/config"
	"github.com/juzbuild/juzbuild/internal/db"
	"github.com/juzbuild/juzbuild/internal/deployer"
	"github.com/juzbuild/juzbuild/internal/dnsapi"
	"github.com/juzbuild/juzbuild/internal/logging"
	"github.com/juzbuild/juzbuild/internal/mailer"
	"github.com/juzbuild/juzbuild/internal/metrics"
	"github.com/juzbuild/juzbuild/internal/sitegen"
	"github.com/juzbuild/juzbuild/internal/workflow"
)

const taskQueue = "juzbuild-tasks"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate("worker"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)
	caps := cfg.Capabilities()
	logger.Info().
		Bool("github", caps.GitHub).
		Bool("vercel", caps.Vercel).
		Bool("dns", caps.DNS).
		Bool("email", caps.Email).
		Bool("archive", caps.Archive).
		Msg("provisioning capabilities")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	corePool, err := db.NewCorePool(ctx, cfg.CoreDatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to core database")
	}
	defer corePool.Close()
	metrics.RegisterPgxPoolMetrics(corePool)

	tc, err := temporalclient.Dial(temporalclient.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to temporal")
	}
	defer tc.Close()

	w := worker.New(tc, taskQueue, worker.Options{})

	// Clients for disabled integrations stay nil; the activities report
	// degraded results instead of calling out.
	var gh activity.CodeHost
	if caps.GitHub {
		gh = codehost.NewClient(cfg.GitHub.APIBaseURL, cfg.GitHub.Token)
	}
	var vercel activity.Deployer
	if caps.Vercel {
		vercel = deployer.NewClient(cfg.Vercel.APIBaseURL, cfg.Vercel.Token, cfg.Vercel.TeamID)
	}
	var dns activity.DNSAPI
	if caps.DNS {
		dns = dnsapi.NewClient(cfg.DNS.APIBaseURL, cfg.DNS.APIUser, cfg.DNS.APIKey, cfg.DNS.ClientIP)
	}
	var mail activity.Mailer
	if caps.Email {
		mail = mailer.NewClient(cfg.Email.APIBaseURL, cfg.Email.APIKey, cfg.Email.From)
	}
	var store activity.ArchiveStore
	if caps.Archive {
		store = archive.NewStore(cfg.Archive.Endpoint, cfg.Archive.Region, cfg.Archive.Bucket,
			cfg.Archive.AccessKey, cfg.Archive.SecretKey)
	}

	// Register activities
	w.RegisterActivity(activity.NewCoreDB(corePool))
	w.RegisterActivity(activity.NewSiteDB(db.NewSiteConnector(cfg.SiteDatabaseURL)))
	w.RegisterActivity(activity.NewTemplate(sitegen.NewGenerator(cfg.TemplateWorkDir), store, caps.Archive))
	w.RegisterActivity(activity.NewRepository(gh, cfg.GitHub.Owner, caps.GitHub, activity.RepositoryPacing{
		UploadDelay: cfg.RepoUploadDelay,
		BatchDelay:  cfg.RepoBatchDelay,
		BatchSize:   cfg.RepoBatchSize,
	}, nil))
	w.RegisterActivity(activity.NewDeploy(vercel, gh, caps.Vercel, caps.GitHub, cfg.DeployLinkDelay, nil))
	w.RegisterActivity(activity.NewDNS(dns, cfg.ParentDomain, caps.DNS))
	w.RegisterActivity(activity.NewNotify(mail, caps.Email))

	// Register workflows
	w.RegisterWorkflow(workflow.SiteProvisionWorkflow)
	w.RegisterWorkflow(workflow.CreateSiteWorkflow)
	w.RegisterWorkflow(workflow.DeleteSiteWorkflow)

	if cfg.MetricsAddr != "" {
		metricsSrv := metrics.NewServer(cfg.MetricsAddr)
		go func() {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("starting metrics server")
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	go func() {
		logger.Info().Str("taskQueue", taskQueue).Msg("starting temporal worker")
		if err := w.Run(worker.InterruptCh()); err != nil {
			logger.Fatal().Err(err).Msg("worker failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down worker")
	cancel()
}
