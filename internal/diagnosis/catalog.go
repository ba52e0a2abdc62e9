package diagnosis

import "strings"

const (
	ClassCommonRust            = "Corn___Common_Rust"
	ClassGrayLeafSpot          = "Corn___Gray_Leaf_Spot"
	ClassHealthy               = "Corn___Healthy"
	ClassNorthernLeafBlight    = "Corn___Northern_Leaf_Blight"
	ClassNorthernLeafSpot      = "Corn___Northern_Leaf_Spot"
	ClassPhaeosphaeriaLeafSpot = "Corn___Phaeosphaeria_Leaf_Spot"
)

const (
	defaultSymptoms  = "No symptoms available."
	defaultTreatment = "No treatment information available."
)

// classNames is indexed by model output position.
var classNames = [...]string{
	ClassCommonRust,
	ClassGrayLeafSpot,
	ClassHealthy,
	ClassNorthernLeafBlight,
	ClassNorthernLeafSpot,
	ClassPhaeosphaeriaLeafSpot,
}

type Details struct {
	Symptoms  string `json:"symptoms"`
	Treatment string `json:"treatment"`
}

var details = map[string]Details{
	ClassCommonRust: {
		Symptoms:  "Small, rust-colored spots on the leaves. These spots might be surrounded by yellowish areas.",
		Treatment: "Plant rust-resistant corn varieties and spray fungicides like Propiconazole or Mancozeb early.",
	},
	ClassGrayLeafSpot: {
		Symptoms:  "Long gray or tan patches on the leaves that reduce the plant's ability to absorb sunlight.",
		Treatment: "Make sure plants have good airflow by reducing density, and spray fungicides such as Azoxystrobin.",
	},
	ClassHealthy: {
		Symptoms:  "Leaves look green, fresh, and healthy with no signs of disease.",
		Treatment: "No treatment needed. Keep watering regularly and provide proper nutrients to maintain health.",
	},
	ClassNorthernLeafBlight: {
		Symptoms:  "Long, cigar-shaped tan patches on the leaves that might feel slightly sunken.",
		Treatment: "Spray fungicides like Pyraclostrobin and rotate crops to keep the disease from coming back.",
	},
	ClassNorthernLeafSpot: {
		Symptoms:  "Small, round or oval spots on the leaves that turn brown or gray over time.",
		Treatment: "Use resistant corn varieties and spray fungicides on the leaves as needed.",
	},
	ClassPhaeosphaeriaLeafSpot: {
		Symptoms:  "Tiny, wet-looking spots on leaves that grow into long, brown streaks.",
		Treatment: "Choose resistant corn varieties and clean up any infected plant parts in the field.",
	},
}

// ClassNames returns the classes in model output order. The slice is a copy.
func ClassNames() []string {
	out := make([]string, len(classNames))
	copy(out, classNames[:])
	return out
}

func NumClasses() int { return len(classNames) }

// Lookup returns the details for class, substituting the stock fallbacks for unknown classes.
func Lookup(class string) (Details, bool) {
	d, ok := details[class]
	if !ok {
		return Details{Symptoms: defaultSymptoms, Treatment: defaultTreatment}, false
	}
	if d.Symptoms == "" {
		d.Symptoms = defaultSymptoms
	}
	if d.Treatment == "" {
		d.Treatment = defaultTreatment
	}
	return d, true
}

type Condition struct {
	Class string
	Label string
	Details
}

// Conditions lists every class with a human readable label, in model output order.
func Conditions() []Condition {
	out := make([]Condition, 0, len(classNames))
	for _, c := range classNames {
		d, _ := Lookup(c)
		out = append(out, Condition{Class: c, Label: Label(c), Details: d})
	}
	return out
}

// Label turns "Corn___Northern_Leaf_Blight" into "Northern Leaf Blight".
func Label(class string) string {
	if _, rest, ok := strings.Cut(class, "___"); ok {
		class = rest
	}
	return strings.ReplaceAll(class, "_", " ")
}
