package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/courseleads/internal/app/models"
)

// likeEscaper escapes LIKE metacharacters so user input matches literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db DBTX
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db DBTX) *LeadRepository {
	return &LeadRepository{db: db}
}

// containsPattern builds an ILIKE pattern matching s anywhere in the column
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func insertLeadQuery(lead models.RegisterLead) squirrel.InsertBuilder {
	return psql.Insert("leads").
		Columns("course_id", "name", "email", "phone", "linkedin_profile", "status").
		Values(lead.CourseID, lead.Name, lead.Email, lead.Phone, lead.LinkedInProfile, string(models.LeadStatusPending)).
		Suffix("RETURNING lead_id")
}

func updateLeadStatusQuery(leadID int64, update models.UpdateLeadStatus) squirrel.UpdateBuilder {
	return psql.Update("leads").
		Set("status", string(update.Status)).
		Where(squirrel.Eq{"lead_id": leadID})
}

// searchLeadsQuery selects leads in storage order, filtered by the non-empty fields of filter
func searchLeadsQuery(filter models.LeadFilter) squirrel.SelectBuilder {
	query := psql.Select("lead_id", "course_id", "name", "email", "phone", "linkedin_profile", "status").
		From("leads")

	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"name": containsPattern(filter.Name)})
	}
	if filter.Email != "" {
		query = query.Where(squirrel.ILike{"email": containsPattern(filter.Email)})
	}

	return query
}

// Create registers a lead with status Pending and returns its generated ID.
// The course ID is sent as text; the server rejects values that are not integers.
func (r *LeadRepository) Create(ctx context.Context, lead models.RegisterLead) (int64, error) {
	const op = "register lead"

	sql, args, err := insertLeadQuery(lead).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, storageError(ctx, op, err)
	}

	return id, nil
}

// UpdateStatus sets the status of a lead and returns the number of rows changed.
// An ID that is not an integer matches no lead.
func (r *LeadRepository) UpdateStatus(ctx context.Context, update models.UpdateLeadStatus) (int64, error) {
	const op = "update lead status"

	leadID, ok := models.ParseRowID(update.LeadID)
	if !ok {
		return 0, nil
	}

	sql, args, err := updateLeadStatusQuery(leadID, update).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, storageError(ctx, op, err)
	}

	return tag.RowsAffected(), nil
}

// Search returns every lead matching filter
func (r *LeadRepository) Search(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error) {
	const op = "search leads"

	sql, args, err := searchLeadsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageError(ctx, op, err)
	}
	defer rows.Close()

	leads := make([]*models.Lead, 0)
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.CourseID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.LinkedInProfile,
			&lead.Status,
		); err != nil {
			return nil, storageError(ctx, op, err)
		}
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(ctx, op, err)
	}

	return leads, nil
}
