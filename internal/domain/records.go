package domain

// RecordSchema describes the table and field layout of one health record type.
type RecordSchema struct {
	Table    string
	Fields   []string
	Required []string
	// AnyOf lists fields of which at least one must be present.
	AnyOf []string
}

// RecordSchemas holds the column layout for every health record type.
var RecordSchemas = map[RecordType]RecordSchema{
	RecordTypeVaccination: {
		Table:    "pet_vaccinations",
		Fields:   []string{"name", "administered_date", "expiration_date", "administered_by", "lot_number"},
		Required: []string{"name", "administered_date"},
	},
	RecordTypeMedication: {
		Table:    "pet_medications",
		Fields:   []string{"name", "dosage", "frequency", "start_date", "end_date", "prescribed_by", "notes"},
		Required: []string{"name"},
	},
	RecordTypeCondition: {
		Table:    "pet_conditions",
		Fields:   []string{"name", "diagnosed_date", "severity", "status", "notes"},
		Required: []string{"name"},
	},
	RecordTypeAllergy: {
		Table:    "pet_allergies",
		Fields:   []string{"allergen", "reaction", "severity", "notes"},
		Required: []string{"allergen"},
	},
	RecordTypeVet: {
		Table:  "pet_vets",
		Fields: []string{"clinic_name", "vet_name", "phone", "email", "address"},
		AnyOf:  []string{"clinic_name", "vet_name"},
	},
	RecordTypeEmergencyContact: {
		Table:    "pet_emergency_contacts",
		Fields:   []string{"name", "relationship", "phone", "email"},
		Required: []string{"name", "phone"},
	},
}
