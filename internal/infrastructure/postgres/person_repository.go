package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/directorio-escolar/internal/domain"
	"github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación de PersonRepository sobre PostgreSQL (usable con pool o tx).
// Las tres variantes comparten la tabla personas; kind discrimina las columnas válidas.
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

const personColumns = `
	kind, status, tags, avatar_url, last_login, name, phone, area, category,
	student_code, grade, section, enrollment_status, average_grade, attendance_percentage,
	tardiness_count, behavior_incidents, academic_risk, tutor_ids, email, relation, verified,
	identity`

// ListAll devuelve la colección en el orden del directorio (altas nuevas primero).
func (r *PersonRepo) ListAll(ctx context.Context) ([]entity.Person, error) {
	rows, err := r.q.Query(ctx, `SELECT `+personColumns+` FROM personas ORDER BY orden`)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()

	var out []entity.Person
	for rows.Next() {
		var row personRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		p, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	return out, nil
}

// Save inserta o reemplaza por identidad. Una alta nueva toma el primer lugar del orden;
// cambiar la variante de una identidad existente devuelve domain.ErrConflict.
func (r *PersonRepo) Save(ctx context.Context, p entity.Person) error {
	query := `
		INSERT INTO personas (` + personColumns + `, orden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23,
			(SELECT COALESCE(MIN(orden), 0) - 1 FROM personas))
		ON CONFLICT (identity) DO UPDATE SET
			status = EXCLUDED.status, tags = EXCLUDED.tags, avatar_url = EXCLUDED.avatar_url,
			last_login = EXCLUDED.last_login, name = EXCLUDED.name, phone = EXCLUDED.phone,
			area = EXCLUDED.area, category = EXCLUDED.category, student_code = EXCLUDED.student_code,
			grade = EXCLUDED.grade, section = EXCLUDED.section, enrollment_status = EXCLUDED.enrollment_status,
			average_grade = EXCLUDED.average_grade, attendance_percentage = EXCLUDED.attendance_percentage,
			tardiness_count = EXCLUDED.tardiness_count, behavior_incidents = EXCLUDED.behavior_incidents,
			academic_risk = EXCLUDED.academic_risk, tutor_ids = EXCLUDED.tutor_ids, email = EXCLUDED.email,
			relation = EXCLUDED.relation, verified = EXCLUDED.verified
		WHERE personas.kind = EXCLUDED.kind`
	tag, err := r.q.Exec(ctx, query, fromEntity(p).args()...)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("save persona %s: %w", directory.Identity(p), domain.ErrInvalidInput)
		}
		return fmt.Errorf("save persona: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Insert agrega al final del orden; se usa para la carga inicial.
// Una identidad repetida devuelve domain.ErrDuplicate.
func (r *PersonRepo) Insert(ctx context.Context, p entity.Person) error {
	query := `
		INSERT INTO personas (` + personColumns + `, orden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23,
			(SELECT COALESCE(MAX(orden), 0) + 1 FROM personas))`
	if _, err := r.q.Exec(ctx, query, fromEntity(p).args()...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return fmt.Errorf("insert persona %s: %w", directory.Identity(p), domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

// Count cantidad de personas registradas.
func (r *PersonRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM personas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count personas: %w", err)
	}
	return n, nil
}

// UpdateStatus reemplaza el estado de todas las identidades dadas; las desconocidas se ignoran.
func (r *PersonRepo) UpdateStatus(ctx context.Context, ids []string, status entity.Status) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.q.Exec(ctx, `UPDATE personas SET status = $1 WHERE identity = ANY($2)`, string(status), ids); err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update status %q: %w", status, domain.ErrInvalidInput)
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// ── Mapeo de filas ────────────────────────────────────────────────────────────

// personRow forma plana de la tabla personas.
type personRow struct {
	Kind                 int16
	Status               string
	Tags                 []string
	AvatarURL            string
	LastLogin            *time.Time
	Name                 string
	Phone                string
	Area                 string
	Category             string
	StudentCode          string
	Grade                string
	Section              string
	EnrollmentStatus     string
	AverageGrade         decimal.Decimal
	AttendancePercentage decimal.Decimal
	TardinessCount       int32
	BehaviorIncidents    int32
	AcademicRisk         bool
	TutorIDs             []string
	Email                string
	Relation             string
	Verified             bool
	Identity             string
}

func (r *personRow) dest() []any {
	return []any{
		&r.Kind, &r.Status, &r.Tags, &r.AvatarURL, &r.LastLogin, &r.Name, &r.Phone, &r.Area, &r.Category,
		&r.StudentCode, &r.Grade, &r.Section, &r.EnrollmentStatus, &r.AverageGrade, &r.AttendancePercentage,
		&r.TardinessCount, &r.BehaviorIncidents, &r.AcademicRisk, &r.TutorIDs, &r.Email, &r.Relation, &r.Verified,
		&r.Identity,
	}
}

func (r personRow) args() []any {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	tutors := r.TutorIDs
	if tutors == nil {
		tutors = []string{}
	}
	return []any{
		r.Kind, r.Status, tags, r.AvatarURL, r.LastLogin, r.Name, r.Phone, r.Area, r.Category,
		r.StudentCode, r.Grade, r.Section, r.EnrollmentStatus, r.AverageGrade, r.AttendancePercentage,
		r.TardinessCount, r.BehaviorIncidents, r.AcademicRisk, tutors, r.Email, r.Relation, r.Verified,
		r.Identity,
	}
}

func fromEntity(p entity.Person) personRow {
	row := personRow{
		Kind:      int16(p.Kind),
		Status:    string(p.Status),
		Tags:      p.Tags,
		AvatarURL: p.AvatarURL,
		LastLogin: p.LastLogin,
		Name:      directory.DisplayName(p),
		Identity:  directory.Identity(p),
	}
	switch p.Kind {
	case entity.KindStaff:
		row.Phone = p.Staff.Phone
		row.Area = p.Staff.Area
		row.Category = string(p.Staff.Category)
	case entity.KindStudent:
		s := p.Student
		row.StudentCode = s.StudentCode
		row.Grade = s.Grade
		row.Section = s.Section
		row.EnrollmentStatus = s.EnrollmentStatus
		row.AverageGrade = s.AverageGrade
		row.AttendancePercentage = s.AttendancePercentage
		row.TardinessCount = int32(s.TardinessCount)
		row.BehaviorIncidents = int32(s.BehaviorIncidents)
		row.AcademicRisk = s.AcademicRisk
		row.TutorIDs = s.TutorIDs
	case entity.KindGuardian:
		g := p.Guardian
		row.Phone = g.Phone
		row.Email = g.Email
		row.Relation = g.Relation
		row.Verified = g.Verified
	}
	return row
}

func (r personRow) toEntity() (entity.Person, error) {
	status := entity.Status(r.Status)
	var tags []string
	if len(r.Tags) > 0 {
		tags = r.Tags
	}
	var p entity.Person
	switch entity.Kind(r.Kind) {
	case entity.KindStaff:
		p = entity.NewStaff(entity.Staff{
			DNI: r.Identity, Name: r.Name, Area: r.Area,
			Category: entity.StaffCategory(r.Category), Phone: r.Phone,
		}, status, tags...)
	case entity.KindStudent:
		p = entity.NewStudent(entity.Student{
			DocumentNumber: r.Identity, StudentCode: r.StudentCode, FullName: r.Name,
			Grade: r.Grade, Section: r.Section, EnrollmentStatus: r.EnrollmentStatus,
			AverageGrade: r.AverageGrade, AttendancePercentage: r.AttendancePercentage,
			TardinessCount: int(r.TardinessCount), BehaviorIncidents: int(r.BehaviorIncidents),
			AcademicRisk: r.AcademicRisk, TutorIDs: r.TutorIDs,
		}, status, tags...)
	case entity.KindGuardian:
		p = entity.NewGuardian(entity.Guardian{
			DNI: r.Identity, Name: r.Name, Email: r.Email,
			Relation: r.Relation, Phone: r.Phone, Verified: r.Verified,
		}, status, tags...)
	default:
		return entity.Person{}, fmt.Errorf("persona %s: kind desconocido %d", r.Identity, r.Kind)
	}
	p.AvatarURL = r.AvatarURL
	p.LastLogin = r.LastLogin
	return p, nil
}
