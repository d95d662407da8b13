package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aomari/course-management/internal/app/models"
	"github.com/aomari/course-management/internal/pkg/apperrors"
)

// InstructorDetailsRepository handles database operations for instructor details
type InstructorDetailsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorDetailsRepository creates a new instructor details repository
func NewInstructorDetailsRepository(db *pgxpool.Pool) *InstructorDetailsRepository {
	return &InstructorDetailsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const detailsColumns = `id, youtube_channel, hobby, created_at, updated_at`

func scanDetails(row pgx.Row) (*models.InstructorDetails, error) {
	var details models.InstructorDetails
	err := row.Scan(
		&details.ID,
		&details.YoutubeChannel,
		&details.Hobby,
		&details.CreatedAt,
		&details.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// Create inserts a new standalone details record
func (r *InstructorDetailsRepository) Create(ctx context.Context, details *models.InstructorDetails) error {
	query := `
		INSERT INTO instructor_details (youtube_channel, hobby)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, details.YoutubeChannel, details.Hobby).
		Scan(&details.ID, &details.CreatedAt, &details.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating instructor details: %w", err)
	}

	return nil
}

// GetByID retrieves a details record by ID
func (r *InstructorDetailsRepository) GetByID(ctx context.Context, id int64) (*models.InstructorDetails, error) {
	query := `SELECT ` + detailsColumns + ` FROM instructor_details WHERE id = $1`

	details, err := scanDetails(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorDetailsNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor details: %w", err)
	}

	return details, nil
}

// Update updates a details record
func (r *InstructorDetailsRepository) Update(ctx context.Context, details *models.InstructorDetails) error {
	query := `
		UPDATE instructor_details
		SET youtube_channel = $1, hobby = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, details.YoutubeChannel, details.Hobby, details.ID)
	if err != nil {
		return fmt.Errorf("error updating instructor details: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorDetailsNotFound
	}

	return nil
}

// Delete removes a details record. A linked instructor is unlinked by the
// foreign key's SET NULL action.
func (r *InstructorDetailsRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructor_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting instructor details: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorDetailsNotFound
	}

	return nil
}

// ExistsByID checks if a details record exists by ID
func (r *InstructorDetailsRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructor_details WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor details existence: %w", err)
	}
	return exists, nil
}

// SearchByYoutubeChannel finds details records whose channel contains the given
// text, case-insensitively.
func (r *InstructorDetailsRepository) SearchByYoutubeChannel(ctx context.Context, channel string) ([]*models.InstructorDetails, error) {
	return r.search(ctx, squirrel.ILike{"youtube_channel": "%" + strings.TrimSpace(channel) + "%"})
}

// SearchByHobby finds details records whose hobby contains the given text,
// case-insensitively.
func (r *InstructorDetailsRepository) SearchByHobby(ctx context.Context, hobby string) ([]*models.InstructorDetails, error) {
	return r.search(ctx, squirrel.ILike{"hobby": "%" + strings.TrimSpace(hobby) + "%"})
}

func (r *InstructorDetailsRepository) search(ctx context.Context, where squirrel.Sqlizer) ([]*models.InstructorDetails, error) {
	querySql, args, err := r.sb.
		Select(detailsColumns).
		From("instructor_details").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build instructor details search query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching instructor details: %w", err)
	}
	defer rows.Close()

	return collectDetails(rows)
}

// GetOrphaned retrieves details records with no owning instructor
func (r *InstructorDetailsRepository) GetOrphaned(ctx context.Context) ([]*models.InstructorDetails, error) {
	query := `
		SELECT d.id, d.youtube_channel, d.hobby, d.created_at, d.updated_at
		FROM instructor_details d
		LEFT JOIN instructors i ON i.instructor_details_id = d.id
		WHERE i.id IS NULL
		ORDER BY d.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying orphaned instructor details: %w", err)
	}
	defer rows.Close()

	return collectDetails(rows)
}

func collectDetails(rows pgx.Rows) ([]*models.InstructorDetails, error) {
	var detailsList []*models.InstructorDetails
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, err
		}
		detailsList = append(detailsList, details)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return detailsList, nil
}
