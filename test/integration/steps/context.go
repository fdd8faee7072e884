// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/infra/dependency"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
	"github.com/pocketledger/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Seeded entity lookups, keyed by name
	accountIDs  map[string]uuid.UUID
	categoryIDs map[string]uuid.UUID

	// Infrastructure
	db  *mock.Db
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func testModels() map[string]any {
	return map[string]any{
		"accounts":             &model.AccountModel{},
		"categories":           &model.CategoryModel{},
		"labels":               &model.LabelModel{},
		"transactions":         &model.TransactionModel{},
		"transaction_splits":   &model.SplitModel{},
		"budgets":              &model.BudgetModel{},
		"planned_transactions": &model.PlannedTransactionModel{},
	}
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			accountIDs:     make(map[string]uuid.UUID),
			categoryIDs:    make(map[string]uuid.UUID),
			db:             mock.NewDb("pocketledger", testModels()),
			cfg:            config.Load(),
		}
		tc.cfg.Server.Environment = "test"

		if err := tc.db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, redisClient)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerSeedSteps registers database seeding steps.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following accounts:$`, theFollowingAccounts)
	ctx.Step(`^the following categories:$`, theFollowingCategories)
	ctx.Step(`^the following transactions:$`, theFollowingTransactions)
	ctx.Step(`^the following budgets:$`, theFollowingBudgets)
	ctx.Step(`^the following planned transactions:$`, theFollowingPlannedTransactions)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "(.*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// tableRows converts a godog data table into maps keyed by the header row.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table requires a header row and at least one data row")
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, r := range table.Rows[1:] {
		row := make(map[string]string, len(header))
		for i, c := range r.Cells {
			row[header[i].Value] = c.Value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// Seeding step implementations

func theFollowingAccounts(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		balance, err := parseAmount(row["balance"])
		if err != nil {
			return ctx, err
		}

		account := &model.AccountModel{
			ID:        uuid.New(),
			Name:      row["name"],
			Type:      row["type"],
			Balance:   balance,
			Color:     row["color"],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tc.db.DbConn.Create(account).Error; err != nil {
			return ctx, fmt.Errorf("failed to seed account %q: %w", row["name"], err)
		}
		tc.accountIDs[account.Name] = account.ID
	}

	return SetTestContext(ctx, tc), nil
}

func theFollowingCategories(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		category := &model.CategoryModel{
			ID:        uuid.New(),
			Name:      row["name"],
			Icon:      row["icon"],
			Color:     row["color"],
			Type:      row["type"],
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tc.db.DbConn.Create(category).Error; err != nil {
			return ctx, fmt.Errorf("failed to seed category %q: %w", row["name"], err)
		}
		tc.categoryIDs[category.Name] = category.ID
	}

	return SetTestContext(ctx, tc), nil
}

func theFollowingTransactions(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		accountID, ok := tc.accountIDs[row["account"]]
		if !ok {
			return ctx, fmt.Errorf("unknown account %q", row["account"])
		}

		var categoryID *uuid.UUID
		if name := row["category"]; name != "" {
			id, ok := tc.categoryIDs[name]
			if !ok {
				return ctx, fmt.Errorf("unknown category %q", name)
			}
			categoryID = &id
		}

		amount, err := parseAmount(row["amount"])
		if err != nil {
			return ctx, err
		}
		date, err := parseDate(row["date"])
		if err != nil {
			return ctx, err
		}

		transaction := &model.TransactionModel{
			ID:          uuid.New(),
			AccountID:   accountID,
			CategoryID:  categoryID,
			Type:        row["type"],
			Amount:      amount,
			Date:        date,
			Description: row["description"],
			Status:      "completed",
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tc.db.DbConn.Create(transaction).Error; err != nil {
			return ctx, fmt.Errorf("failed to seed transaction %q: %w", row["description"], err)
		}
	}

	return SetTestContext(ctx, tc), nil
}

func theFollowingBudgets(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		var categoryID *uuid.UUID
		if name := row["category"]; name != "" {
			id, ok := tc.categoryIDs[name]
			if !ok {
				return ctx, fmt.Errorf("unknown category %q", name)
			}
			categoryID = &id
		}

		amount, err := parseAmount(row["amount"])
		if err != nil {
			return ctx, err
		}
		startDate, err := parseDate(row["start_date"])
		if err != nil {
			return ctx, err
		}

		budget := &model.BudgetModel{
			ID:         uuid.New(),
			CategoryID: categoryID,
			Amount:     amount,
			Period:     row["period"],
			StartDate:  startDate,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tc.db.DbConn.Create(budget).Error; err != nil {
			return ctx, fmt.Errorf("failed to seed budget: %w", err)
		}
	}

	return SetTestContext(ctx, tc), nil
}

func theFollowingPlannedTransactions(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return ctx, err
	}

	now := time.Now().UTC()
	for _, row := range rows {
		accountID, ok := tc.accountIDs[row["account"]]
		if !ok {
			return ctx, fmt.Errorf("unknown account %q", row["account"])
		}

		var categoryID *uuid.UUID
		if name := row["category"]; name != "" {
			id, ok := tc.categoryIDs[name]
			if !ok {
				return ctx, fmt.Errorf("unknown category %q", name)
			}
			categoryID = &id
		}

		amount, err := parseAmount(row["amount"])
		if err != nil {
			return ctx, err
		}
		nextOccurrence, err := parseDate(row["next_occurrence"])
		if err != nil {
			return ctx, err
		}

		status := row["status"]
		if status == "" {
			status = "pending"
		}

		planned := &model.PlannedTransactionModel{
			ID:                 uuid.New(),
			AccountID:          accountID,
			CategoryID:         categoryID,
			Type:               row["type"],
			Amount:             amount,
			Description:        row["description"],
			ScheduledDate:      nextOccurrence,
			NextOccurrenceDate: nextOccurrence,
			Status:             status,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tc.db.DbConn.Create(planned).Error; err != nil {
			return ctx, fmt.Errorf("failed to seed planned transaction %q: %w", row["description"], err)
		}
	}

	return SetTestContext(ctx, tc), nil
}

// HTTP step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	url := tc.server.URL + endpoint
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

// Response step implementations

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	// Feature files escape embedded quotes to survive the step argument
	expected = strings.ReplaceAll(expected, `\"`, `"`)
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}
