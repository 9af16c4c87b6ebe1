package careers

import (
	"context"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoListOrdersByPosition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"career_id", "career_name", "bucket", "riasec_profile", "primary_subjects", "tags",
		"min_qualification", "top_courses", "base_paragraph", "microprojects", "why_fit", "position",
	}).
		AddRow("c001", "Mechanical Engineer", "Engineering & Core Technology", "R",
			"Mathematics|Physics", "mechanical|hands_on", "B.Tech", "B.Tech Mechanical",
			"Builds machines.", "Strip a gear system", "Hands-on.", 0).
		AddRow("c010", "Data Scientist", "Data AI & Analytics", "IA",
			"Mathematics|Computer Science|Statistics", "data|new_age", "B.Sc", "B.Sc Statistics|B.Stat",
			"Works on data.", "Analyze a dataset", "Curiosity.", 1)

	mock.ExpectQuery("SELECT career_id, career_name, bucket").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 careers, got %d", len(got))
	}
	if got[0].ID != "c001" || got[1].ID != "c010" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
	if !reflect.DeepEqual(got[1].PrimarySubjects, []string{"Mathematics", "Computer Science", "Statistics"}) {
		t.Fatalf("unexpected subjects: %v", got[1].PrimarySubjects)
	}
	if !reflect.DeepEqual(got[1].TopCourses, []string{"B.Sc Statistics", "B.Stat"}) {
		t.Fatalf("unexpected courses: %v", got[1].TopCourses)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows([]string{
		"career_id", "career_name", "bucket", "riasec_profile", "primary_subjects", "tags",
		"min_qualification", "top_courses", "base_paragraph", "microprojects", "why_fit", "position",
	})
	mock.ExpectQuery("SELECT career_id, career_name, bucket").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	if _, err := repo.List(context.Background()); err != ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	career := Career{
		ID:               "c001",
		Name:             "Mechanical Engineer",
		Bucket:           "Engineering & Core Technology",
		RiasecProfile:    "R",
		PrimarySubjects:  []string{"Mathematics", "Physics"},
		Tags:             []string{"mechanical", "hands_on"},
		MinQualification: "B.Tech",
		TopCourses:       []string{"B.Tech Mechanical"},
		BaseParagraph:    "Builds machines.",
		Microprojects:    []string{"Strip a gear system"},
		WhyFit:           "Hands-on.",
		Position:         0,
	}

	mock.ExpectExec("INSERT INTO careers").
		WithArgs(
			career.ID,
			career.Name,
			career.Bucket,
			career.RiasecProfile,
			"Mathematics|Physics",
			"mechanical|hands_on",
			career.MinQualification,
			"B.Tech Mechanical",
			career.BaseParagraph,
			"Strip a gear system",
			career.WhyFit,
			career.Position,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Upsert(context.Background(), career); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
