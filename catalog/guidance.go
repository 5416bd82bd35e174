package catalog

// ProductForm is the physical dispensing form of a medication. It selects
// both the quantity options offered to the user and the quantity banding
// table applied by the pricing engine.
type ProductForm string

const (
	FormTablets         ProductForm = "tablets"
	FormCapsules        ProductForm = "capsules"
	FormSoftgel         ProductForm = "softgel"
	FormCream           ProductForm = "cream"
	FormOintment        ProductForm = "ointment"
	FormLiquid          ProductForm = "liquid"
	FormPowder          ProductForm = "powder"
	FormInhaler         ProductForm = "inhaler"
	FormNasalSpray      ProductForm = "nasalspray"
	FormPatch           ProductForm = "patch"
	FormGum             ProductForm = "gum"
	FormLozenge         ProductForm = "lozenge"
	FormSuppository     ProductForm = "suppository"
	FormSingle          ProductForm = "single"
	FormTopicalSolution ProductForm = "topicalsolution"
)

// DosageGuidance describes the recognized dosage options and product form
// for one canonical drug identity.
type DosageGuidance struct {
	GuidanceText  string      `json:"guidance"`
	DosageOptions []string    `json:"dosageOptions"`
	DefaultDosage string      `json:"defaultDosage,omitempty"`
	ProductForm   ProductForm `json:"productForm"`
}

// guidanceCatalog is keyed by canonical drug identity (see CanonicalName).
var guidanceCatalog = map[string]DosageGuidance{
	"ibuprofen": {
		GuidanceText:  "Common OTC strengths are 200mg tablets; 400mg and above are prescription only.",
		DosageOptions: []string{"200mg", "400mg", "600mg", "800mg"},
		DefaultDosage: "200mg",
		ProductForm:   FormTablets,
	},
	"acetaminophen": {
		GuidanceText:  "Do not exceed 3000mg per day from all sources.",
		DosageOptions: []string{"325mg", "500mg", "650mg"},
		DefaultDosage: "500mg",
		ProductForm:   FormTablets,
	},
	"naproxen": {
		GuidanceText:  "Take with food to reduce stomach upset.",
		DosageOptions: []string{"220mg", "250mg", "375mg", "500mg"},
		DefaultDosage: "220mg",
		ProductForm:   FormTablets,
	},
	"amoxicillin": {
		GuidanceText:  "Complete the full prescribed course even if symptoms improve.",
		DosageOptions: []string{"250mg", "500mg", "875mg"},
		DefaultDosage: "500mg",
		ProductForm:   FormCapsules,
	},
	"azithromycin": {
		GuidanceText:  "Typically dispensed as a 5-day dose pack.",
		DosageOptions: []string{"250mg", "500mg"},
		DefaultDosage: "250mg",
		ProductForm:   FormTablets,
	},
	"lisinopril": {
		GuidanceText:  "Monitor blood pressure regularly while taking this medication.",
		DosageOptions: []string{"5mg", "10mg", "20mg", "40mg"},
		DefaultDosage: "10mg",
		ProductForm:   FormTablets,
	},
	"amlodipine": {
		GuidanceText:  "May cause ankle swelling; report persistent swelling to your doctor.",
		DosageOptions: []string{"2.5mg", "5mg", "10mg"},
		DefaultDosage: "5mg",
		ProductForm:   FormTablets,
	},
	"atorvastatin": {
		GuidanceText:  "Usually taken once daily; avoid grapefruit juice.",
		DosageOptions: []string{"10mg", "20mg", "40mg", "80mg"},
		DefaultDosage: "20mg",
		ProductForm:   FormTablets,
	},
	"simvastatin": {
		GuidanceText:  "Take in the evening for best effect.",
		DosageOptions: []string{"10mg", "20mg", "40mg"},
		DefaultDosage: "20mg",
		ProductForm:   FormTablets,
	},
	"metformin": {
		GuidanceText:  "Take with meals to minimize gastrointestinal side effects.",
		DosageOptions: []string{"500mg", "850mg", "1000mg"},
		DefaultDosage: "500mg",
		ProductForm:   FormTablets,
	},
	"omeprazole": {
		GuidanceText:  "Take 30-60 minutes before the first meal of the day.",
		DosageOptions: []string{"10mg", "20mg", "40mg"},
		DefaultDosage: "20mg",
		ProductForm:   FormCapsules,
	},
	"levothyroxine": {
		GuidanceText:  "Take on an empty stomach, 30-60 minutes before breakfast.",
		DosageOptions: []string{"25mcg", "50mcg", "75mcg", "100mcg"},
		DefaultDosage: "50mcg",
		ProductForm:   FormTablets,
	},
	"sertraline": {
		GuidanceText:  "May take several weeks to reach full effect.",
		DosageOptions: []string{"25mg", "50mg", "100mg"},
		DefaultDosage: "50mg",
		ProductForm:   FormTablets,
	},
	"gabapentin": {
		GuidanceText:  "Do not stop abruptly; dose must be tapered.",
		DosageOptions: []string{"100mg", "300mg", "400mg", "600mg"},
		DefaultDosage: "300mg",
		ProductForm:   FormCapsules,
	},
	"ondansetron": {
		GuidanceText:  "Orally disintegrating tablets dissolve on the tongue without water.",
		DosageOptions: []string{"4mg", "8mg"},
		DefaultDosage: "4mg",
		ProductForm:   FormTablets,
	},
	"fishoil": {
		GuidanceText:  "Refrigerate to reduce fishy aftertaste.",
		DosageOptions: []string{"1000mg", "1200mg"},
		DefaultDosage: "1000mg",
		ProductForm:   FormSoftgel,
	},
	"hydrocortisone": {
		GuidanceText:  "Apply a thin layer to the affected area up to 4 times daily.",
		DosageOptions: []string{"0.5%", "1%"},
		DefaultDosage: "1%",
		ProductForm:   FormCream,
	},
	"miconazole": {
		GuidanceText:  "Continue use for the full treatment period even if symptoms clear.",
		DosageOptions: []string{"2%", "4%"},
		DefaultDosage: "2%",
		ProductForm:   FormCream,
	},
	"triamcinolone": {
		GuidanceText:  "Prescription topical steroid; do not use on the face unless directed.",
		DosageOptions: []string{"0.025%", "0.1%", "0.5%"},
		DefaultDosage: "0.1%",
		ProductForm:   FormOintment,
	},
	"ibuprofensuspension": {
		GuidanceText:  "Shake well before each use; dose by weight for children.",
		DosageOptions: []string{"100mg/5ml"},
		DefaultDosage: "100mg/5ml",
		ProductForm:   FormLiquid,
	},
	"dextromethorphan": {
		GuidanceText:  "Do not combine with other cough and cold products containing DXM.",
		DosageOptions: []string{"10mg/5ml", "15mg/5ml"},
		DefaultDosage: "15mg/5ml",
		ProductForm:   FormLiquid,
	},
	"psyllium": {
		GuidanceText:  "Mix with at least 8 ounces of liquid and drink promptly.",
		DosageOptions: []string{},
		ProductForm:   FormPowder,
	},
	"albuterol": {
		GuidanceText:  "Rescue inhaler; seek care if needing more than 2 canisters per month.",
		DosageOptions: []string{"90mcg"},
		DefaultDosage: "90mcg",
		ProductForm:   FormInhaler,
	},
	"fluticasone": {
		GuidanceText:  "Takes several days of regular use for full allergy relief.",
		DosageOptions: []string{"50mcg"},
		DefaultDosage: "50mcg",
		ProductForm:   FormNasalSpray,
	},
	"nicotinepatch": {
		GuidanceText:  "Apply to clean, dry, hairless skin; rotate application sites.",
		DosageOptions: []string{"7mg", "14mg", "21mg"},
		DefaultDosage: "21mg",
		ProductForm:   FormPatch,
	},
	"nicotinegum": {
		GuidanceText:  "Chew slowly and park between cheek and gum.",
		DosageOptions: []string{"2mg", "4mg"},
		DefaultDosage: "2mg",
		ProductForm:   FormGum,
	},
	"nicotinelozenge": {
		GuidanceText:  "Allow to dissolve slowly; do not chew or swallow whole.",
		DosageOptions: []string{"2mg", "4mg"},
		DefaultDosage: "2mg",
		ProductForm:   FormLozenge,
	},
	"bisacodyl": {
		GuidanceText:  "Suppositories usually act within 15 to 60 minutes.",
		DosageOptions: []string{"10mg"},
		DefaultDosage: "10mg",
		ProductForm:   FormSuppository,
	},
	"epinephrine": {
		GuidanceText:  "Auto-injector for emergency use; carry two at all times.",
		DosageOptions: []string{"0.15mg", "0.3mg"},
		DefaultDosage: "0.3mg",
		ProductForm:   FormSingle,
	},
	"levonorgestrel": {
		GuidanceText:  "Single-dose emergency contraception; most effective within 72 hours.",
		DosageOptions: []string{"1.5mg"},
		DefaultDosage: "1.5mg",
		ProductForm:   FormSingle,
	},
	"clindamycinsolution": {
		GuidanceText:  "Topical antibiotic solution; apply to affected skin twice daily.",
		DosageOptions: []string{"1%"},
		DefaultDosage: "1%",
		ProductForm:   FormTopicalSolution,
	},
}

// GuidanceFor resolves a free-text drug name to its dosage guidance entry.
// The second return value is false when no entry exists for the name.
func GuidanceFor(drugName string) (DosageGuidance, bool) {
	g, ok := guidanceCatalog[CanonicalName(drugName)]
	return g, ok
}

// DefaultGuidance is the fallback for drugs that appear in the price feed
// without a catalog entry. It mirrors the most common case, oral tablets.
func DefaultGuidance() DosageGuidance {
	return DosageGuidance{
		GuidanceText:  "Consult your pharmacist for dosing information.",
		DosageOptions: []string{"25mg", "50mg", "100mg"},
		DefaultDosage: "50mg",
		ProductForm:   FormTablets,
	}
}

// ProductFormFor returns the product form for a drug name. Unknown drugs
// default to tablets, which keeps quantity pricing well defined for any
// record that appears only in the feed.
func ProductFormFor(drugName string) ProductForm {
	if g, ok := GuidanceFor(drugName); ok {
		return g.ProductForm
	}
	return FormTablets
}
