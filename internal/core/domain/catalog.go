package domain

// Catalog is the read-only set of known specification parameters.
// It is shared by every document in a session; documents never mutate it.
type Catalog struct {
	types []FieldType
	byID  map[string]FieldType
}

// NewCatalog builds a catalog from an ordered list of field types.
func NewCatalog(types []FieldType) *Catalog {
	byID := make(map[string]FieldType, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}
	return &Catalog{types: types, byID: byID}
}

// Lookup returns the field type for an id and whether it exists.
func (c *Catalog) Lookup(id string) (FieldType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Types returns the catalog entries in declaration order.
func (c *Catalog) Types() []FieldType {
	return c.types
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.types)
}

// DefaultCatalog returns the built-in battery parameter catalog.
// The ids match the parameter codes emitted by the extraction service.
func DefaultCatalog() *Catalog {
	return NewCatalog([]FieldType{
		{ID: "C_NOMINAL_AH_DB", Label: "Nominal Capacity", Unit: "Ah"},
		{ID: "E_NOMINAL_WH_DB", Label: "Nominal Energy", Unit: "Wh"},
		{ID: "U_NOMINAL_V_DB", Label: "Nominal Voltage", Unit: "V"},
		{ID: "U_MAX_V_DB", Label: "Charge Voltage Limit", Unit: "V"},
		{ID: "U_MIN_V_DB", Label: "Discharge Cutoff Voltage", Unit: "V"},
		{ID: "I_CHARGE_MAX_A_DB", Label: "Max Charge Current", Unit: "A"},
		{ID: "I_DISCHARGE_MAX_A_DB", Label: "Max Discharge Current", Unit: "A"},
		{ID: "I_PEAK_A_DB", Label: "Peak Discharge Current", Unit: "A"},
		{ID: "R_INTERNAL_MOHM_DB", Label: "Internal Resistance", Unit: "mOhm"},
		{ID: "T_CHARGE_MIN_C_DB", Label: "Min Charge Temperature", Unit: "degC"},
		{ID: "T_CHARGE_MAX_C_DB", Label: "Max Charge Temperature", Unit: "degC"},
		{ID: "T_DISCHARGE_MIN_C_DB", Label: "Min Discharge Temperature", Unit: "degC"},
		{ID: "T_DISCHARGE_MAX_C_DB", Label: "Max Discharge Temperature", Unit: "degC"},
		{ID: "M_CELL_G_DB", Label: "Cell Mass", Unit: "g"},
		{ID: "N_CYCLES_DB", Label: "Cycle Life", Unit: ""},
		{ID: "CHEMISTRY_DB", Label: "Cell Chemistry", Unit: ""},
		{ID: "FORM_FACTOR_DB", Label: "Form Factor", Unit: ""},
	})
}
