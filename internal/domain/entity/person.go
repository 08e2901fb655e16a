package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind discrimina la variante de Person. Se fija en la construcción y nunca cambia.
type Kind int

const (
	KindStaff Kind = iota + 1
	KindStudent
	KindGuardian
)

func (k Kind) String() string {
	switch k {
	case KindStaff:
		return "personal"
	case KindStudent:
		return "estudiante"
	case KindGuardian:
		return "apoderado"
	default:
		return "desconocido"
	}
}

// Status estado de acceso de una persona del directorio.
type Status string

const (
	StatusActive    Status = "Activo"
	StatusInactive  Status = "Inactivo"
	StatusSuspended Status = "Suspendido"
	StatusPending   Status = "Pendiente"
	StatusGraduated Status = "Egresado"
)

// Statuses lista los estados en el orden en que se muestran en los KPI.
var Statuses = []Status{StatusActive, StatusInactive, StatusSuspended, StatusPending, StatusGraduated}

// Valid indica si s es uno de los estados conocidos.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// StaffCategory sub-rol del personal.
type StaffCategory string

const (
	CategoryDirector       StaffCategory = "Director"
	CategoryAdministrative StaffCategory = "Administrativo"
	CategoryTeacher        StaffCategory = "Docente"
	CategorySupport        StaffCategory = "Apoyo"
)

// StaffCategories en el orden de los selectores de rol.
var StaffCategories = []StaffCategory{CategoryDirector, CategoryAdministrative, CategoryTeacher, CategorySupport}

// Roles derivados para estudiantes y apoderados.
const (
	RoleStudent  = "Estudiante"
	RoleGuardian = "Apoderado"
)

// Staff datos propios del personal (directivos, docentes, administrativos, apoyo).
type Staff struct {
	DNI      string
	Name     string
	Area     string
	Category StaffCategory
	Phone    string
}

// Student datos propios de un estudiante, incluidas sus métricas académicas.
type Student struct {
	DocumentNumber       string
	StudentCode          string
	FullName             string
	Grade                string
	Section              string
	EnrollmentStatus     string
	AverageGrade         decimal.Decimal
	AttendancePercentage decimal.Decimal
	TardinessCount       int
	BehaviorIncidents    int
	AcademicRisk         bool
	TutorIDs             []string
}

// Guardian datos propios de un apoderado/tutor.
type Guardian struct {
	DNI      string
	Name     string
	Email    string
	Relation string
	Phone    string
	Verified bool
}

// Person es una entrada del directorio: variante etiquetada por Kind.
// Exactamente uno de Staff, Student o Guardian es no nulo y corresponde a Kind.
type Person struct {
	Kind      Kind
	Status    Status
	Tags      []string
	AvatarURL string
	LastLogin *time.Time

	Staff    *Staff
	Student  *Student
	Guardian *Guardian
}

// NewStaff construye una Person de personal.
func NewStaff(s Staff, status Status, tags ...string) Person {
	return Person{Kind: KindStaff, Status: status, Tags: tags, Staff: &s}
}

// NewStudent construye una Person estudiante.
func NewStudent(s Student, status Status, tags ...string) Person {
	return Person{Kind: KindStudent, Status: status, Tags: tags, Student: &s}
}

// NewGuardian construye una Person apoderado.
func NewGuardian(g Guardian, status Status, tags ...string) Person {
	return Person{Kind: KindGuardian, Status: status, Tags: tags, Guardian: &g}
}

// Clone devuelve una copia profunda; los payloads no se comparten entre copias.
func (p Person) Clone() Person {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	if p.LastLogin != nil {
		t := *p.LastLogin
		out.LastLogin = &t
	}
	switch p.Kind {
	case KindStaff:
		s := *p.Staff
		out.Staff = &s
	case KindStudent:
		s := *p.Student
		s.TutorIDs = append([]string(nil), p.Student.TutorIDs...)
		out.Student = &s
	case KindGuardian:
		g := *p.Guardian
		out.Guardian = &g
	}
	return out
}

// WithStatus devuelve una copia con el estado reemplazado por completo.
func (p Person) WithStatus(s Status) Person {
	out := p.Clone()
	out.Status = s
	return out
}
