package memory

import (
	"time"

	"telemock/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func seedDate(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2025, month, day, hour, minute, 0, 0, time.UTC)
}

func seedPtr(t time.Time) *time.Time {
	return &t
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *Store) seed() error {
	if err := s.seedUsers(); err != nil {
		return err
	}

	s.seedCatalog()
	s.seedClinical()
	s.seedCommerce()
	s.seedContent()

	return nil
}

func (s *Store) seedUsers() error {
	users := []*entity.User{
		{ID: 1, Username: "admin", Password: "admin", Role: entity.RoleAdministrator, FirstName: "Ana", LastName: "Rojas", Email: "admin@telemed.local", Phone: "0991000001", NationalID: "0900000001", State: entity.UserStateActive},
		{ID: 2, Username: "medico", Password: "medico", Role: entity.RolePhysician, FirstName: "Carlos", LastName: "Mendoza", Email: "cmendoza@telemed.local", Phone: "0991000002", NationalID: "0900000002", State: entity.UserStateActive, Specialty: "Cardiología", Avatar: "/img/avatars/medico.png"},
		{ID: 3, Username: "cliente", Password: "cliente", Role: entity.RolePatient, FirstName: "Lucía", LastName: "Fernández", Email: "lucia@correo.local", Phone: "0991000003", NationalID: "0900000003", State: entity.UserStateActive},
		{ID: 4, Username: "paciente2", Password: "paciente2", Role: entity.RolePatient, FirstName: "Jorge", LastName: "Paredes", Email: "jorge@correo.local", Phone: "0991000004", NationalID: "0900000004", State: entity.UserStateActive},
		{ID: 5, Username: "medica", Password: "medica", Role: entity.RolePhysician, FirstName: "María", LastName: "Salazar", Email: "msalazar@telemed.local", Phone: "0991000005", NationalID: "0900000005", State: entity.UserStateActive, Specialty: "Dermatología"},
		{ID: 6, Username: "inactivo", Password: "inactivo", Role: entity.RolePatient, FirstName: "Pedro", LastName: "Vera", Email: "pedro@correo.local", Phone: "0991000006", NationalID: "0900000006", State: entity.UserStateInactive},
	}

	for _, u := range users {
		hashed, err := s.hash(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashed
		s.Users.Insert(u)
	}

	return nil
}

func (s *Store) seedCatalog() {
	s.Categories = NewCollection(
		&entity.Lookup{ID: 1, Name: "Medicamentos"},
		&entity.Lookup{ID: 2, Name: "Dispositivos médicos"},
		&entity.Lookup{ID: 3, Name: "Cuidado personal"},
	)
	s.ProductTypes = NewCollection(
		&entity.Lookup{ID: 1, Name: "Genérico"},
		&entity.Lookup{ID: 2, Name: "Marca"},
	)
	s.Availabilities = NewCollection(
		&entity.Lookup{ID: 1, Name: "Disponible"},
		&entity.Lookup{ID: 2, Name: "Agotado"},
		&entity.Lookup{ID: 3, Name: "Bajo pedido"},
	)
	s.Products = NewCollection(
		&entity.Product{ID: 101, Name: "Tensiómetro digital", Description: "Monitor de presión arterial de brazo", Price: price("199.9"), Stock: 15, CategoryID: 2, Category: "Dispositivos médicos", TypeID: 2, Type: "Marca", AvailabilityID: 1, Availability: "Disponible", ImageURL: "/img/productos/tensiometro.jpg"},
		&entity.Product{ID: 102, Name: "Termómetro infrarrojo", Description: "Lectura sin contacto en un segundo", Price: price("89.5"), Stock: 30, CategoryID: 2, Category: "Dispositivos médicos", TypeID: 2, Type: "Marca", AvailabilityID: 1, Availability: "Disponible", ImageURL: "/img/productos/termometro.jpg"},
		&entity.Product{ID: 103, Name: "Vitamina C 1000mg", Description: "Frasco de 60 tabletas", Price: price("25"), Stock: 100, CategoryID: 1, Category: "Medicamentos", TypeID: 1, Type: "Genérico", AvailabilityID: 1, Availability: "Disponible", ImageURL: "/img/productos/vitamina-c.jpg"},
		&entity.Product{ID: 104, Name: "Protector solar FPS 50", Description: "Emulsión de 120 ml", Price: price("59.9"), Stock: 0, CategoryID: 3, Category: "Cuidado personal", TypeID: 2, Type: "Marca", AvailabilityID: 2, Availability: "Agotado", ImageURL: "/img/productos/protector.jpg"},
	)

	s.Specialties = NewCollection(
		&entity.Lookup{ID: 1, Name: "Medicina General"},
		&entity.Lookup{ID: 2, Name: "Cardiología"},
		&entity.Lookup{ID: 3, Name: "Dermatología"},
		&entity.Lookup{ID: 4, Name: "Pediatría"},
	)
	s.AppointmentTypes = NewCollection(
		&entity.Lookup{ID: 1, Name: "Consulta"},
		&entity.Lookup{ID: 2, Name: "Control"},
		&entity.Lookup{ID: 3, Name: "Emergencia"},
	)
	s.Physicians = NewCollection(
		&entity.Physician{ID: 2, Name: "Carlos Mendoza", Specialties: []int{2, 1}, Modalities: []entity.Modality{entity.ModalityVirtual, entity.ModalityInPerson}},
		&entity.Physician{ID: 5, Name: "María Salazar", Specialties: []int{3}, Modalities: []entity.Modality{entity.ModalityVirtual}},
	)
}

func (s *Store) seedClinical() {
	s.Appointments = NewCollection(
		&entity.Appointment{ID: 1201, PatientID: 3, Patient: "Lucía Fernández", PhysicianID: 2, Physician: "Carlos Mendoza", SpecialtyID: 2, Specialty: "Cardiología", TypeID: 1, Type: "Consulta", Subtype: "Primera vez", Modality: entity.ModalityVirtual, Status: entity.AppointmentConfirmed, PaymentStatus: entity.PaymentPaid, Date: "2025-07-10", Time: "09:00", Amount: price("120")},
		&entity.Appointment{ID: 1202, PatientID: 3, Patient: "Lucía Fernández", PhysicianID: 2, Physician: "Carlos Mendoza", SpecialtyID: 1, Specialty: "Medicina General", TypeID: 2, Type: "Control", Subtype: "Seguimiento", Modality: entity.ModalityInPerson, Status: entity.AppointmentReserved, PaymentStatus: entity.PaymentPending, Date: "2025-07-15", Time: "10:00", Amount: price("80")},
		&entity.Appointment{ID: 1203, PatientID: 4, Patient: "Jorge Paredes", PhysicianID: 5, Physician: "María Salazar", SpecialtyID: 3, Specialty: "Dermatología", TypeID: 1, Type: "Consulta", Subtype: "Primera vez", Modality: entity.ModalityVirtual, Status: entity.AppointmentCompleted, PaymentStatus: entity.PaymentPaid, Date: "2025-06-20", Time: "11:00", Amount: price("100"), CompletedAt: seedPtr(seedDate(time.June, 20, 11, 45))},
		&entity.Appointment{ID: 1204, PatientID: 4, Patient: "Jorge Paredes", PhysicianID: 2, Physician: "Carlos Mendoza", SpecialtyID: 2, Specialty: "Cardiología", TypeID: 2, Type: "Control", Subtype: "Seguimiento", Modality: entity.ModalityInPerson, Status: entity.AppointmentCancelled, PaymentStatus: entity.PaymentPending, Date: "2025-06-25", Time: "14:00", Amount: price("80")},
	)

	s.Histories = NewCollection(
		&entity.ClinicalHistory{ID: 9001, PatientID: 3, Patient: "Lucía Fernández", PhysicianID: 2, Physician: "Carlos Mendoza", Reason: "Palpitaciones ocasionales", Diagnosis: "Extrasístoles benignas", Recommendations: "Reducir cafeína y control en 30 días", Status: entity.HistoryStatusInTreatment, ConsultedAt: seedDate(time.June, 1, 9, 0), UpdatedAt: seedDate(time.June, 1, 9, 40), Background: "Sin antecedentes cardiovasculares", CurrentIllness: "Episodios de palpitaciones de dos semanas de evolución", PhysicalExam: "TA 120/80, FC 78", Notes: "Solicitar Holter"},
		&entity.ClinicalHistory{ID: 9002, PatientID: 4, Patient: "Jorge Paredes", PhysicianID: 2, Physician: "Carlos Mendoza", Reason: "Hipertensión arterial", Diagnosis: "HTA grado 1", Recommendations: "Dieta hiposódica y actividad física", Status: entity.HistoryStatusInTreatment, ConsultedAt: seedDate(time.June, 10, 15, 0), UpdatedAt: seedDate(time.June, 10, 15, 30), Background: "Padre hipertenso", CurrentIllness: "Cefalea matutina", PhysicalExam: "TA 145/95", Notes: ""},
		&entity.ClinicalHistory{ID: 9003, PatientID: 3, Patient: "Lucía Fernández", PhysicianID: 5, Physician: "María Salazar", Reason: "Lesión en piel", Diagnosis: "Dermatitis de contacto", Recommendations: "Evitar alérgenos identificados", Status: "Alta", ConsultedAt: seedDate(time.May, 15, 11, 0), UpdatedAt: seedDate(time.May, 30, 11, 0), Background: "Alergia a níquel", CurrentIllness: "Eritema en muñeca", PhysicalExam: "Placa eritematosa", Notes: ""},
		&entity.ClinicalHistory{ID: 9004, PatientID: 3, Patient: "Lucía Fernández", PhysicianID: 2, Physician: "Carlos Mendoza", Reason: "Control de palpitaciones", Diagnosis: "Extrasístoles en remisión", Recommendations: "Mantener medidas", Status: entity.HistoryStatusInTreatment, ConsultedAt: seedDate(time.July, 10, 9, 0), UpdatedAt: seedDate(time.July, 10, 9, 30), Background: "", CurrentIllness: "Mejoría clínica", PhysicalExam: "TA 118/76, FC 72", Notes: ""},
	)

	s.Prescriptions = NewCollection(
		&entity.Prescription{ID: 5001, HistoryID: 9001, Medication: "Propranolol 10mg", Dosage: "1 tableta", Frequency: "Cada 12 horas", Duration: "30 días", Instructions: "Tomar con alimentos"},
		&entity.Prescription{ID: 5002, HistoryID: 9001, Medication: "Magnesio 400mg", Dosage: "1 cápsula", Frequency: "Diaria", Duration: "30 días", Instructions: "En la noche"},
		&entity.Prescription{ID: 5003, HistoryID: 9002, Medication: "Losartán 50mg", Dosage: "1 tableta", Frequency: "Diaria", Duration: "90 días", Instructions: "En la mañana"},
		&entity.Prescription{ID: 5004, HistoryID: 9004, Medication: "Propranolol 10mg", Dosage: "1 tableta", Frequency: "Diaria", Duration: "15 días", Instructions: "Reducir gradualmente"},
	)

	s.Messages = NewCollection(
		&entity.Message{ID: 1, AppointmentID: 1201, Participants: []int{3, 2}, SenderID: 3, SentAt: seedDate(time.July, 9, 18, 0), Text: "Buenas tardes doctor, ¿debo estar en ayunas?"},
		&entity.Message{ID: 2, AppointmentID: 1201, Participants: []int{3, 2}, SenderID: 2, SentAt: seedDate(time.July, 9, 18, 20), Text: "No es necesario, nos vemos mañana."},
	)
}

func (s *Store) seedCommerce() {
	s.Orders = NewCollection(
		&entity.Order{ID: 7001, Buyer: entity.Buyer{ID: 3, Name: "Lucía Fernández", Email: "lucia@correo.local"}, Status: entity.OrderDelivered, Total: price("89.5"), Items: []entity.CartLine{{ProductID: 102, Name: "Termómetro infrarrojo", Quantity: 1, Price: price("89.5")}}, CanReview: true, CreatedAt: seedDate(time.June, 2, 12, 0)},
		&entity.Order{ID: 7002, Buyer: entity.Buyer{ID: 4, Name: "Jorge Paredes", Email: "jorge@correo.local"}, Status: entity.OrderPaid, Total: price("50"), Items: []entity.CartLine{{ProductID: 103, Name: "Vitamina C 1000mg", Quantity: 2, Price: price("25")}}, CanReview: false, CreatedAt: seedDate(time.July, 1, 16, 0)},
	)

	s.Reviews = NewCollection(
		&entity.Review{ID: 1, Rating: 5, Comment: "Muy preciso y fácil de usar", CreatedAt: seedDate(time.June, 8, 10, 0), Reviewer: entity.Buyer{ID: 3, Name: "Lucía Fernández", Email: "lucia@correo.local"}, Product: entity.ProductRef{ID: 102, Name: "Termómetro infrarrojo"}},
	)

	s.Points.Add(3, 120)
	s.Points.Add(4, 40)
}

func (s *Store) seedContent() {
	s.Posts = NewCollection(
		&entity.BlogPost{ID: 1, Slug: "cuidado-del-corazon", Title: "Cuidado del corazón", Excerpt: "Hábitos sencillos para una buena salud cardiovascular.", Content: "Caminar 30 minutos al día, reducir la sal y dormir bien son claves.", Status: entity.PostPublished, Views: 42, Likes: 7, CreatedAt: seedDate(time.May, 2, 8, 0), UpdatedAt: seedDate(time.May, 2, 8, 0), PublishedAt: seedPtr(seedDate(time.May, 2, 8, 0))},
		&entity.BlogPost{ID: 2, Slug: "alimentacion-saludable", Title: "Alimentación saludable", Excerpt: "Qué incluir en tu plato cada día.", Content: "Frutas, verduras y proteínas magras en cada comida.", Status: entity.PostDraft, CreatedAt: seedDate(time.June, 12, 8, 0), UpdatedAt: seedDate(time.June, 12, 8, 0)},
	)

	s.dashboard = entity.DashboardMetrics{
		KPIs: []entity.KPI{
			{Key: "pacientes", Label: "Pacientes activos", Value: price("128")},
			{Key: "citas_mes", Label: "Citas del mes", Value: price("342")},
			{Key: "ingresos_mes", Label: "Ingresos del mes", Value: price("18450.75")},
			{Key: "satisfaccion", Label: "Satisfacción", Value: price("4.7")},
		},
		Appointments: []entity.SeriesPoint{
			{Period: "2025-03", Value: price("250")},
			{Period: "2025-04", Value: price("281")},
			{Period: "2025-05", Value: price("305")},
			{Period: "2025-06", Value: price("342")},
		},
		Revenue: []entity.SeriesPoint{
			{Period: "2025-03", Value: price("13200.50")},
			{Period: "2025-04", Value: price("15110")},
			{Period: "2025-05", Value: price("16980.25")},
			{Period: "2025-06", Value: price("18450.75")},
		},
		NewPatients: []entity.SeriesPoint{
			{Period: "2025-03", Value: price("21")},
			{Period: "2025-04", Value: price("18")},
			{Period: "2025-05", Value: price("27")},
			{Period: "2025-06", Value: price("30")},
		},
	}
}
