// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmendes/agency-ops-api/infrastructure/database/postgres"
	"github.com/gmendes/agency-ops-api/internal/domain"
)

const (
	clientsTable = "clients c"
)

type ClientRepository interface {
	GetByID(clientID string) (*domain.Client, error)
	ListClients(statuses []domain.ClientStatus) ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetByID(clientID string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name", "c.status", "c.meta_monthly_budget", "c.google_monthly_budget").
		From(clientsTable).
		Where(squirrel.Eq{"c.id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	client := &domain.Client{}
	err = row.Scan(
		&client.ID,
		&client.Name,
		&client.Status,
		&client.MetaMonthlyBudget,
		&client.GoogleMonthlyBudget,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) ListClients(statuses []domain.ClientStatus) ([]*domain.Client, error) {
	queryBuilder := squirrel.
		Select("c.id", "c.name", "c.status", "c.meta_monthly_budget", "c.google_monthly_budget").
		From(clientsTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Status,
			&client.MetaMonthlyBudget,
			&client.GoogleMonthlyBudget,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}

		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}
