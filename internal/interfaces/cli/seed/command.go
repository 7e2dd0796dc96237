package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	issueUC "tracker/internal/application/issue/usecases"
	userUC "tracker/internal/application/user/usecases"
	"tracker/internal/infrastructure/config"
	"tracker/internal/infrastructure/database"
	"tracker/internal/infrastructure/migration"
	"tracker/internal/infrastructure/repository"
	"tracker/internal/shared/db"
	"tracker/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		Long:  `Create a handful of users, issues, labels, and comments for local development.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Migrate(database.Get(), log); err != nil {
		return err
	}

	gormDB := database.Get()
	txManager := db.NewTransactionManager(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	labelRepo := repository.NewLabelRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	createUser := userUC.NewCreateUserUseCase(userRepo, txManager, log)
	createIssue := issueUC.NewCreateIssueUseCase(issueRepo, userRepo, txManager, log)
	replaceLabels := issueUC.NewReplaceLabelsUseCase(issueRepo, labelRepo, txManager, log)
	addComment := issueUC.NewAddCommentUseCase(issueRepo, commentRepo, userRepo, txManager, log)

	ctx := context.Background()

	fullName := func(s string) *string { return &s }
	users := []userUC.CreateUserCommand{
		{Username: "alice", Email: "alice@example.com", FullName: fullName("Alice Johnson")},
		{Username: "bob", Email: "bob@example.com", FullName: fullName("Bob Smith")},
		{Username: "carol", Email: "carol@example.com", FullName: fullName("Carol Davis")},
	}

	userIDs := make([]uint, 0, len(users))
	for _, cmd := range users {
		u, err := createUser.Execute(ctx, cmd)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", cmd.Username, err)
		}
		userIDs = append(userIDs, u.ID)
	}

	issues := []struct {
		cmd    issueUC.CreateIssueCommand
		labels []string
	}{
		{
			cmd: issueUC.CreateIssueCommand{
				Title:       "Login page returns 500 on empty password",
				Description: "Submitting the login form without a password crashes the handler.",
				Priority:    "high",
				AssigneeID:  &userIDs[0],
			},
			labels: []string{"bug", "auth"},
		},
		{
			cmd: issueUC.CreateIssueCommand{
				Title:       "Add dark mode toggle",
				Description: "Users keep asking for a dark theme.",
				Priority:    "low",
				AssigneeID:  &userIDs[1],
			},
			labels: []string{"feature", "ui"},
		},
		{
			cmd: issueUC.CreateIssueCommand{
				Title:       "Export report as CSV",
				Description: "The weekly report should be downloadable.",
				Priority:    "medium",
			},
			labels: []string{"feature"},
		},
	}

	for _, seed := range issues {
		created, err := createIssue.Execute(ctx, seed.cmd)
		if err != nil {
			return fmt.Errorf("failed to seed issue: %w", err)
		}
		if _, err := replaceLabels.Execute(ctx, issueUC.ReplaceLabelsCommand{
			IssueID: created.ID,
			Names:   seed.labels,
		}); err != nil {
			return fmt.Errorf("failed to seed labels: %w", err)
		}
		if _, err := addComment.Execute(ctx, issueUC.AddCommentCommand{
			IssueID:  created.ID,
			AuthorID: userIDs[2],
			Body:     "Triaged, looks reasonable.",
		}); err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}

	log.Infow("seed completed", "users", len(users), "issues", len(issues))
	return nil
}
