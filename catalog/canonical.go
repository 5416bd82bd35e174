package catalog

import "strings"

// normalizeName lowercases, trims and collapses internal whitespace.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// canonicalizeName strips everything that is not a letter or digit after
// normalization. "Tylenol Extra" and "tylenol_extra" both canonicalize to
// "tylenolextra".
func canonicalizeName(name string) string {
	normalized := normalizeName(name)
	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// drugAliases maps brand names to the canonical drug identity of the
// guidance catalog. Keys must match the alias lookup exactly; partial alias
// matching is intentionally not supported.
var drugAliases = map[string]string{
	"tylenol":          "acetaminophen",
	"advil":            "ibuprofen",
	"motrin":           "ibuprofen",
	"aleve":            "naproxen",
	"prilosec":         "omeprazole",
	"zocor":            "simvastatin",
	"lipitor":          "atorvastatin",
	"glucophage":       "metformin",
	"zestril":          "lisinopril",
	"prinivil":         "lisinopril",
	"norvasc":          "amlodipine",
	"synthroid":        "levothyroxine",
	"zoloft":           "sertraline",
	"neurontin":        "gabapentin",
	"proventil":        "albuterol",
	"ventolin":         "albuterol",
	"flonase":          "fluticasone",
	"zofran":           "ondansetron",
	"cortizone":        "hydrocortisone",
	"cortizone 10":     "hydrocortisone",
	"nicorette":        "nicotinegum",
	"nicoderm":         "nicotinepatch",
	"nicoderm cq":      "nicotinepatch",
	"metamucil":        "psyllium",
	"dulcolax":         "bisacodyl",
	"monistat":         "miconazole",
	"epipen":           "epinephrine",
	"plan b":           "levonorgestrel",
	"amoxil":           "amoxicillin",
	"zithromax":        "azithromycin",
	"cleocin t":        "clindamycinsolution",
	"robitussin":       "dextromethorphan",
	"childrens motrin": "ibuprofensuspension",
}

// CanonicalName resolves a free-text drug name to the canonical identity
// used as the guidance catalog key. The alias table is consulted with both
// the lightly-normalized and the fully-canonicalized spelling; when neither
// resolves, the canonicalized form itself is the key.
func CanonicalName(name string) string {
	normalized := normalizeName(name)
	if target, ok := drugAliases[normalized]; ok {
		return target
	}
	canonical := canonicalizeName(name)
	if target, ok := drugAliases[canonical]; ok {
		return target
	}
	return canonical
}
