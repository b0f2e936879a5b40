// Command markfy-seed wipes the bookmark store and repopulates it with a
// sample data set, useful for local development and demos.
package main

import (
	"context"
	"os"
	"path/filepath"

	"markfy/ent"
	"markfy/internal/bookmarks/database"
	"markfy/internal/config"

	"go.uber.org/zap"
)

type seedBookmark struct {
	title       string
	url         string
	description string
	isFavorite  bool
}

var sampleBookmarks = []seedBookmark{
	{"Go Documentation", "https://go.dev/doc/", "The official Go documentation and guides", true},
	{"Go Standard Library", "https://pkg.go.dev/std", "Package documentation for the Go standard library", true},
	{"Ent", "https://entgo.io/docs/getting-started", "An entity framework for Go", false},
	{"chi", "https://go-chi.io", "Lightweight, idiomatic router for Go HTTP services", true},
	{"GitHub", "https://github.com", "Code hosting platform for version control and collaboration", true},
	{"Stack Overflow", "https://stackoverflow.com", "Community-driven Q&A for developers", false},
	{"MDN Web Docs", "https://developer.mozilla.org", "Resources for developers, by developers", true},
	{"SQLite", "https://www.sqlite.org/docs.html", "Small, fast, self-contained SQL database engine", false},
	{"Redis", "https://redis.io/docs/", "In-memory data store used as cache and message broker", false},
	{"Docker", "https://www.docker.com", "Containerization platform for applications", false},
	{"AWS", "https://aws.amazon.com", "Cloud computing services by Amazon", true},
	{"Figma", "https://www.figma.com", "Collaborative interface design tool", false},
	{"Notion", "https://www.notion.so", "All-in-one workspace for notes, docs, and collaboration", true},
	{"Linear", "https://linear.app", "Issue tracking and project management tool", false},
	{"Postman", "https://www.postman.com", "API development and testing platform", false},
	{"VS Code", "https://code.visualstudio.com", "Free source-code editor by Microsoft", true},
	{"JetBrains", "https://www.jetbrains.com", "Professional development tools and IDEs", false},
	{"Grafana", "https://grafana.com/docs/", "Observability dashboards and visualization", false},
	{"Prometheus", "https://prometheus.io/docs/", "Monitoring system and time series database", false},
	{"Kubernetes", "https://kubernetes.io/docs/", "Container orchestration platform", true},
	{"Testify", "https://github.com/stretchr/testify", "Assertions and mocks for Go tests", false},
	{"Zap", "https://github.com/uber-go/zap", "Fast, structured, leveled logging for Go", false},
	{"Go Blog", "https://go.dev/blog/", "Official articles from the Go team", true},
	{"Effective Go", "https://go.dev/doc/effective_go", "Tips for writing clear, idiomatic Go code", true},
	{"Go Proverbs", "https://go-proverbs.github.io", "Simple, poetic, pithy guidance for Go programmers", false},
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	if cfg.DatabasePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			logger.Fatal("failed to create data directory", zap.Error(err))
		}
	}

	client, _, err := database.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer client.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, client); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	deleted, err := client.Bookmark.Delete().Exec(ctx)
	if err != nil {
		logger.Fatal("failed to clear existing bookmarks", zap.Error(err))
	}
	logger.Info("cleared existing bookmarks", zap.Int("deleted", deleted))

	builders := make([]*ent.BookmarkCreate, len(sampleBookmarks))
	for i, b := range sampleBookmarks {
		builders[i] = client.Bookmark.Create().
			SetTitle(b.title).
			SetURL(b.url).
			SetDescription(b.description).
			SetIsFavorite(b.isFavorite)
	}
	if _, err := client.Bookmark.CreateBulk(builders...).Save(ctx); err != nil {
		logger.Fatal("failed to seed bookmarks", zap.Error(err))
	}

	logger.Info("seeding completed",
		zap.Int("created", len(sampleBookmarks)),
		zap.String("path", cfg.DatabasePath),
	)
}
