package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tracker/internal/domain/issue"
	vo "tracker/internal/domain/issue/valueobjects"
	"tracker/internal/domain/user"
	"tracker/internal/shared/db"
	"tracker/internal/shared/errors"
	"tracker/internal/shared/logger"
)

type ImportIssuesCommand struct {
	// Reader supplies CSV content with a header row:
	// title,description,status,priority,assignee_id
	Reader io.Reader
}

// RowImportError records the validation failures of a single row. It is
// returned as data in the result, never raised as an error: a bad row
// never aborts the batch.
type RowImportError struct {
	RowNumber int      `json:"row_number"`
	Errors    []string `json:"errors"`
}

type ImportIssuesResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []RowImportError `json:"errors"`
}

// ImportIssuesUseCase imports issues from CSV. Rows are validated
// independently and failed rows are skipped, but all valid rows are
// written and committed together at the end: validation is row-isolated
// while durability is batch-level. Rows are numbered with the header as
// row 1, so the first data row reports as row 2.
//
// Imported issues take their fields literally from the row: version
// stays at its initial value and the resolved-timestamp policy does not
// run, so a row with status=resolved yields resolved_at null. Only
// status transitions through the update paths stamp resolved_at.
type ImportIssuesUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  user.UserRepository
	txManager db.TxManager
	logger    logger.Interface
}

func NewImportIssuesUseCase(
	issueRepo issue.IssueRepository,
	userRepo user.UserRepository,
	txManager db.TxManager,
	logger logger.Interface,
) *ImportIssuesUseCase {
	return &ImportIssuesUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ImportIssuesUseCase) Execute(ctx context.Context, cmd ImportIssuesCommand) (*ImportIssuesResult, error) {
	reader := csv.NewReader(cmd.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewValidationError("CSV file is empty")
	}
	if err != nil {
		return nil, errors.NewValidationError("failed to read CSV header", err.Error())
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	if _, ok := columns["title"]; !ok {
		return nil, errors.NewValidationError("CSV header must contain a title column")
	}

	result := &ImportIssuesResult{Errors: []RowImportError{}}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Header counts as row 1, so the first data row is row 2.
		rowNum := 1
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			rowNum++
			result.TotalRows++

			if err != nil {
				result.Errors = append(result.Errors, RowImportError{
					RowNumber: rowNum,
					Errors:    []string{fmt.Sprintf("malformed CSV row: %v", err)},
				})
				continue
			}

			newIssue, rowErrors := uc.buildRow(txCtx, columns, record)
			if len(rowErrors) > 0 {
				result.Errors = append(result.Errors, RowImportError{
					RowNumber: rowNum,
					Errors:    rowErrors,
				})
				continue
			}

			if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Counts are only reported after the commit succeeded; a failure
	// between validation and commit loses the whole batch.
	result.Failed = len(result.Errors)
	result.Successful = result.TotalRows - result.Failed

	uc.logger.Infow("issue import completed",
		"total_rows", result.TotalRows,
		"successful", result.Successful,
		"failed", result.Failed,
	)
	return result, nil
}

// buildRow validates one CSV row independently and constructs the issue.
// Every validation problem of the row is collected, not just the first.
func (uc *ImportIssuesUseCase) buildRow(ctx context.Context, columns map[string]int, record []string) (*issue.Issue, []string) {
	var rowErrors []string

	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	title := field("title")
	if title == "" {
		rowErrors = append(rowErrors, "title is required")
	}

	status, err := vo.ParseStatusOrDefault(field("status"))
	if err != nil {
		rowErrors = append(rowErrors, err.Error())
	}

	priority, err := vo.ParsePriorityOrDefault(field("priority"))
	if err != nil {
		rowErrors = append(rowErrors, err.Error())
	}

	var assigneeID *uint
	if raw := field("assignee_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("invalid assignee_id: %s", raw))
		} else {
			id := uint(parsed)
			exists, err := uc.userRepo.Exists(ctx, id)
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("failed to check assignee %d: %v", id, err))
			} else if !exists {
				rowErrors = append(rowErrors, fmt.Sprintf("assignee ID %d does not exist", id))
			} else {
				assigneeID = &id
			}
		}
	}

	if len(rowErrors) > 0 {
		return nil, rowErrors
	}

	newIssue, err := issue.NewIssue(title, field("description"), status, priority, assigneeID)
	if err != nil {
		return nil, []string{err.Error()}
	}
	return newIssue, nil
}
