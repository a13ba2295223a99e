package catalog

import "github.com/shopspring/decimal"

// Seed is the stock the storefront opens with. There is no load/save format;
// the catalog always starts from this list.
func Seed() []Product {
	return []Product{
		{
			ID:               "1",
			Name:             "Paracetamol 500mg",
			Category:         Tablets,
			Price:            decimal.NewFromFloat(5.00),
			Image:            "https://picsum.photos/seed/paracetamol/400/400",
			ShortDescription: "Pain and fever relief",
			Description:      "Paracetamol provides effective relief from mild to moderate pain and reduces fever.",
			Dosage:           "1-2 tablets every 4-6 hours, max 8 tablets in 24 hours",
			InStock:          true,
		},
		{
			ID:               "2",
			Name:             "Amoxicillin 250mg",
			Category:         Capsules,
			Price:            decimal.NewFromFloat(12.50),
			Image:            "https://picsum.photos/seed/amoxicillin/400/400",
			ShortDescription: "Broad-spectrum antibiotic",
			Description:      "Amoxicillin treats a range of bacterial infections. Complete the full prescribed course.",
			Dosage:           "1 capsule every 8 hours as prescribed",
			InStock:          true,
		},
		{
			ID:               "3",
			Name:             "Benadryl Cough Syrup",
			Category:         Syrups,
			Price:            decimal.NewFromFloat(8.75),
			Image:            "https://picsum.photos/seed/benadryl/400/400",
			ShortDescription: "Relief from cough and throat irritation",
			Description:      "Soothing syrup for dry and wet cough with antihistamine action.",
			Dosage:           "10ml three times a day",
			InStock:          true,
		},
		{
			ID:               "4",
			Name:             "Cetirizine 10mg",
			Category:         Tablets,
			Price:            decimal.NewFromFloat(4.25),
			Image:            "https://picsum.photos/seed/cetirizine/400/400",
			ShortDescription: "Allergy relief",
			Description:      "Non-drowsy antihistamine for hay fever, hives and other allergies.",
			Dosage:           "1 tablet once daily",
			InStock:          true,
		},
		{
			ID:               "5",
			Name:             "Insulin Glargine",
			Category:         Injections,
			Price:            decimal.NewFromFloat(45.00),
			Image:            "https://picsum.photos/seed/insulin/400/400",
			ShortDescription: "Long-acting insulin",
			Description:      "Once-daily basal insulin for type 1 and type 2 diabetes. Keep refrigerated.",
			Dosage:           "As directed by your physician",
			InStock:          false,
		},
		{
			ID:               "6",
			Name:             "Neosporin Ointment",
			Category:         Topical,
			Price:            decimal.NewFromFloat(6.80),
			Image:            "https://picsum.photos/seed/neosporin/400/400",
			ShortDescription: "Antibiotic ointment for cuts",
			Description:      "Triple antibiotic ointment to prevent infection in minor cuts, scrapes and burns.",
			Dosage:           "Apply a thin layer 1-3 times daily",
			InStock:          true,
		},
		{
			ID:               "7",
			Name:             "Omeprazole 20mg",
			Category:         Capsules,
			Price:            decimal.NewFromFloat(9.90),
			Image:            "https://picsum.photos/seed/omeprazole/400/400",
			ShortDescription: "Acid reflux and heartburn",
			Description:      "Proton pump inhibitor that reduces stomach acid production.",
			Dosage:           "1 capsule daily before breakfast",
			InStock:          true,
		},
		{
			ID:               "8",
			Name:             "Ibuprofen Syrup 100mg/5ml",
			Category:         Syrups,
			Price:            decimal.NewFromFloat(7.40),
			Image:            "https://picsum.photos/seed/ibuprofen/400/400",
			ShortDescription: "Pain and fever relief for children",
			Description:      "Pediatric suspension for pain, inflammation and fever.",
			Dosage:           "Dose by weight; see package insert",
			InStock:          true,
		},
	}
}
