package careers

import (
	"context"
	"database/sql"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all careers ordered by catalog position.
func (r *PGRepo) List(ctx context.Context) ([]Career, error) {
	const query = `
SELECT career_id, career_name, bucket, riasec_profile, primary_subjects, tags,
       min_qualification, top_courses, base_paragraph, microprojects, why_fit, position
FROM careers
ORDER BY position ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Career
	for rows.Next() {
		var c Career
		var subjects, tags, courses, projects string
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Bucket,
			&c.RiasecProfile,
			&subjects,
			&tags,
			&c.MinQualification,
			&courses,
			&c.BaseParagraph,
			&projects,
			&c.WhyFit,
			&c.Position,
		); err != nil {
			return nil, err
		}
		c.PrimarySubjects = splitList(subjects)
		c.Tags = splitList(tags)
		c.TopCourses = splitList(courses)
		c.Microprojects = splitList(projects)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// Upsert inserts or replaces one career row; used by the catalog seeder.
func (r *PGRepo) Upsert(ctx context.Context, c Career) error {
	const query = `
INSERT INTO careers (
    career_id, career_name, bucket, riasec_profile, primary_subjects, tags,
    min_qualification, top_courses, base_paragraph, microprojects, why_fit, position
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (career_id) DO UPDATE SET
    career_name = EXCLUDED.career_name,
    bucket = EXCLUDED.bucket,
    riasec_profile = EXCLUDED.riasec_profile,
    primary_subjects = EXCLUDED.primary_subjects,
    tags = EXCLUDED.tags,
    min_qualification = EXCLUDED.min_qualification,
    top_courses = EXCLUDED.top_courses,
    base_paragraph = EXCLUDED.base_paragraph,
    microprojects = EXCLUDED.microprojects,
    why_fit = EXCLUDED.why_fit,
    position = EXCLUDED.position`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		c.ID,
		c.Name,
		c.Bucket,
		c.RiasecProfile,
		strings.Join(c.PrimarySubjects, "|"),
		strings.Join(c.Tags, "|"),
		c.MinQualification,
		strings.Join(c.TopCourses, "|"),
		c.BaseParagraph,
		strings.Join(c.Microprojects, "|"),
		c.WhyFit,
		c.Position,
	)
	return err
}
