package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmendes/agency-ops-api/infrastructure/database/postgres"
	"github.com/gmendes/agency-ops-api/internal/domain"
)

const (
	adAccountsTable = "ad_accounts aa"

	adAccountColumns = "aa.id, aa.client_id, aa.platform, aa.name, aa.nickname, " +
		"aa.external_id, aa.billing_model, aa.is_primary, aa.status"
)

type AdAccountRepository interface {
	GetByID(accountID string) (*domain.AdAccount, error)
	ListAccounts(statuses []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListByClientID(clientID string) ([]*domain.AdAccount, error)
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) GetByID(accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(adAccountColumns).
		From(adAccountsTable).
		Where(squirrel.Eq{"aa.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	account, err := scanAdAccountRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *adAccountRepository) ListAccounts(statuses []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select(adAccountColumns).
		From(adAccountsTable).
		OrderBy("aa.client_id ASC", "aa.is_primary DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"aa.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAccounts(query, args)
}

func (r *adAccountRepository) ListByClientID(clientID string) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(adAccountColumns).
		From(adAccountsTable).
		Where(squirrel.Eq{"aa.client_id": clientID}).
		OrderBy("aa.platform ASC", "aa.is_primary DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAccounts(query, args)
}

func (r *adAccountRepository) queryAccounts(query string, args []interface{}) ([]*domain.AdAccount, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := scanAdAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func scanAdAccount(rows *sql.Rows) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	err := rows.Scan(
		&account.ID,
		&account.ClientID,
		&account.Platform,
		&account.Name,
		&account.Nickname,
		&account.ExternalID,
		&account.BillingModel,
		&account.Primary,
		&account.Status,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func scanAdAccountRow(row *sql.Row) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	err := row.Scan(
		&account.ID,
		&account.ClientID,
		&account.Platform,
		&account.Name,
		&account.Nickname,
		&account.ExternalID,
		&account.BillingModel,
		&account.Primary,
		&account.Status,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}
