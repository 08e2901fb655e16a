package directory_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

func staff(dni, name, area string, cat entity.StaffCategory, status entity.Status, tags ...string) entity.Person {
	return entity.NewStaff(entity.Staff{DNI: dni, Name: name, Area: area, Category: cat}, status, tags...)
}

func student(doc, code, name, grade, section string, avg float64, status entity.Status, tags ...string) entity.Person {
	return entity.NewStudent(entity.Student{
		DocumentNumber: doc,
		StudentCode:    code,
		FullName:       name,
		Grade:          grade,
		Section:        section,
		AverageGrade:   decimal.NewFromFloat(avg),
	}, status, tags...)
}

func guardian(dni, name, email string, status entity.Status, tags ...string) entity.Person {
	return entity.NewGuardian(entity.Guardian{DNI: dni, Name: name, Email: email, Relation: "Madre"}, status, tags...)
}

func identities(list []entity.Person) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		switch p.Kind {
		case entity.KindStudent:
			out = append(out, p.Student.DocumentNumber)
		case entity.KindStaff:
			out = append(out, p.Staff.DNI)
		default:
			out = append(out, p.Guardian.DNI)
		}
	}
	return out
}

// sampleDirectory colección mixta usada por la mayoría de los tests.
func sampleDirectory() []entity.Person {
	login := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	docente := staff("40000001", "Ana Torres", "Matemáticas", entity.CategoryTeacher, entity.StatusActive, "Tutor")
	docente.LastLogin = &login
	return []entity.Person{
		docente,
		staff("40000002", "Bruno Díaz", "Dirección", entity.CategoryDirector, entity.StatusActive),
		staff("40000003", "Carla Ríos", "Secretaría", entity.CategoryAdministrative, entity.StatusSuspended),
		student("70000001", "000070000001", "Ángel Quispe", "5to Secundaria", "A", 15.5, entity.StatusActive, "Delegado"),
		student("70000002", "000070000002", "Beatriz Huamán", "3ro Primaria", "B", 17, entity.StatusPending),
		student("70000003", "000070000003", "Ñuflo Paredes", "5to Secundaria", "B", 11.25, entity.StatusActive, "Riesgo académico"),
		guardian("10000001", "Rosa Quispe", "rosa.quispe@gmail.com", entity.StatusActive, "Verificado"),
		guardian("10000002", "Luis Huamán", "luis@hotmail.com", entity.StatusInactive),
	}
}
