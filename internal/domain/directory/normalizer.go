// Package directory contiene la lógica pura del directorio escolar: acceso uniforme a
// las tres variantes de persona, el pipeline de consulta (pestaña → filtros → búsqueda →
// etiquetas → orden → paginación) y el conjunto de selección.
//
// Nada en este paquete hace I/O ni guarda estado entre llamadas.
package directory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// DefaultEmailDomain dominio usado para sintetizar correos de personal y estudiantes.
const DefaultEmailDomain = "colegio.edu.pe"

// DisplayName nombre a mostrar: FullName para estudiantes, Name en otro caso.
func DisplayName(p entity.Person) string {
	switch p.Kind {
	case entity.KindStudent:
		return p.Student.FullName
	case entity.KindStaff:
		return p.Staff.Name
	case entity.KindGuardian:
		return p.Guardian.Name
	}
	return ""
}

// Identity clave única: número de documento para estudiantes, DNI en otro caso.
func Identity(p entity.Person) string {
	switch p.Kind {
	case entity.KindStudent:
		return p.Student.DocumentNumber
	case entity.KindStaff:
		return p.Staff.DNI
	case entity.KindGuardian:
		return p.Guardian.DNI
	}
	return ""
}

// SearchCode código visible en la tabla: código de estudiante o DNI.
func SearchCode(p entity.Person) string {
	if p.Kind == entity.KindStudent {
		return p.Student.StudentCode
	}
	return Identity(p)
}

// DerivedRole rol calculado: "Estudiante", "Apoderado" o la categoría del personal.
func DerivedRole(p entity.Person) string {
	switch p.Kind {
	case entity.KindStudent:
		return entity.RoleStudent
	case entity.KindGuardian:
		return entity.RoleGuardian
	case entity.KindStaff:
		return string(p.Staff.Category)
	}
	return ""
}

// DerivedEmail correo del apoderado o uno sintetizado desde la identidad.
func DerivedEmail(p entity.Person, domain string) string {
	if p.Kind == entity.KindGuardian {
		return p.Guardian.Email
	}
	if domain == "" {
		domain = DefaultEmailDomain
	}
	return Identity(p) + "@" + domain
}

// Level nivel/área: "{grado} {sección}" para estudiantes, área para personal, vacío para apoderados.
func Level(p entity.Person) string {
	switch p.Kind {
	case entity.KindStudent:
		return strings.TrimSpace(p.Student.Grade + " " + p.Student.Section)
	case entity.KindStaff:
		return p.Staff.Area
	}
	return ""
}

// ── Valores ordenables ────────────────────────────────────────────────────────

type sortKind int

const (
	sortNull sortKind = iota
	sortNumber
	sortText
)

// SortValue valor de una columna resuelto para comparar: nulo, numérico o texto.
type SortValue struct {
	kind sortKind
	num  decimal.Decimal
	text string
}

// NullValue valor ausente; siempre se ordena al final.
func NullValue() SortValue { return SortValue{} }

// TextValue valor de texto.
func TextValue(s string) SortValue { return SortValue{kind: sortText, text: s} }

// NumberValue valor numérico.
func NumberValue(d decimal.Decimal) SortValue { return SortValue{kind: sortNumber, num: d} }

// IsNull indica si el valor está ausente.
func (v SortValue) IsNull() bool { return v.kind == sortNull }

// IsNumber indica si el valor es numérico.
func (v SortValue) IsNumber() bool { return v.kind == sortNumber }

func (v SortValue) String() string {
	switch v.kind {
	case sortNumber:
		return v.num.String()
	case sortText:
		return v.text
	}
	return ""
}

// SortableValue resuelve el valor de la clave key para cualquier variante.
// Las claves no mapeadas se buscan en la tabla de campos de la variante; si el
// campo no existe en ella el resultado es nulo.
func SortableValue(p entity.Person, key, emailDomain string) SortValue {
	switch key {
	case "name", "fullName", "nombre":
		return TextValue(DisplayName(p))
	case "identity", "id", "dni", "documentNumber":
		return TextValue(Identity(p))
	case "role", "rol":
		return TextValue(DerivedRole(p))
	case "grade", "level", "nivel":
		return TextValue(Level(p))
	case "status", "estado":
		return TextValue(string(p.Status))
	case "email":
		return TextValue(DerivedEmail(p, emailDomain))
	case "lastLogin":
		if p.LastLogin == nil {
			return NullValue()
		}
		return NumberValue(decimal.NewFromInt(p.LastLogin.UnixMilli()))
	case "tags", "etiquetas":
		return TextValue(strings.Join(p.Tags, ", "))
	}
	return fieldValue(p, key)
}

func fieldValue(p entity.Person, key string) SortValue {
	switch p.Kind {
	case entity.KindStaff:
		s := p.Staff
		switch key {
		case "area":
			return TextValue(s.Area)
		case "category":
			return TextValue(string(s.Category))
		case "phone":
			return TextValue(s.Phone)
		}
	case entity.KindStudent:
		s := p.Student
		switch key {
		case "studentCode":
			return TextValue(s.StudentCode)
		case "section":
			return TextValue(s.Section)
		case "enrollmentStatus":
			return TextValue(s.EnrollmentStatus)
		case "averageGrade":
			return NumberValue(s.AverageGrade)
		case "attendancePercentage":
			return NumberValue(s.AttendancePercentage)
		case "tardinessCount":
			return NumberValue(decimal.NewFromInt(int64(s.TardinessCount)))
		case "behaviorIncidents":
			return NumberValue(decimal.NewFromInt(int64(s.BehaviorIncidents)))
		case "academicRisk":
			return boolValue(s.AcademicRisk)
		}
	case entity.KindGuardian:
		g := p.Guardian
		switch key {
		case "relation":
			return TextValue(g.Relation)
		case "phone":
			return TextValue(g.Phone)
		case "verified":
			return boolValue(g.Verified)
		}
	}
	return NullValue()
}

func boolValue(b bool) SortValue {
	if b {
		return NumberValue(decimal.NewFromInt(1))
	}
	return NumberValue(decimal.Zero)
}
