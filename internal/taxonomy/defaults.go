package taxonomy

import "jobmill/internal/models"

// Default returns the built-in tables. A YAML file loaded with Load
// overrides individual sections; anything the file omits keeps these
// values.
func Default() *Tables {
	return &Tables{
		ContractKeywords: map[models.ContractType][]string{
			models.ContractCDI:        {"cdi", "indéterminé", "indetermine", "permanent", "indefinite"},
			models.ContractCDD:        {"cdd", "déterminé", "determine", "fixed term", "temporary"},
			models.ContractStage:      {"stage", "internship", "intern "},
			models.ContractAlternance: {"alternance", "apprentissage", "apprenticeship", "contrat pro"},
			models.ContractFreelance:  {"freelance", "indépendant", "independant", "contractor"},
			models.ContractInterim:    {"intérim", "interim", "mission intérimaire"},
		},
		ContractPriority: []models.ContractType{
			models.ContractStage,
			models.ContractAlternance,
			models.ContractCDI,
			models.ContractCDD,
			models.ContractInterim,
			models.ContractFreelance,
		},
		PartTimeKeywords: []string{"temps partiel", "part time", "part-time"},

		JuniorKeywords: []string{"junior", "débutant", "debutant", "jr.", "entry level", "première expérience"},
		SeniorKeywords: []string{"senior", "sr.", "confirmé", "confirme", "expérimenté", "experimente", "expert", "lead"},

		Technologies: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "go", "php",
			"ruby", "swift", "kotlin", "scala", "rust", "r",
			"django", "flask", "spring", "react", "angular", "vue", "node",
			"laravel", "symfony",
			"sql", "postgresql", "mysql", "mongodb", "oracle", "sqlite", "redis",
			"elasticsearch", "cassandra",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
			"jenkins", "git", "ci/cd",
			"hadoop", "spark", "kafka", "airflow", "dbt",
			"machine learning", "deep learning", "data science", "nlp",
			"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
			"power bi", "tableau", "excel", "sas",
		},

		RemoteKeywords: []string{
			"télétravail", "teletravail", "remote", "à distance", "a distance",
			"localisation non précisée", "localisation non precisee",
		},
		NegotiableKeywords: []string{
			"négocier", "negocier", "négociable", "negociable",
			"selon profil", "selon expérience", "selon experience",
			"à définir", "a definir",
			"non précisé", "non precise", "non spécifié", "non specifie",
			"non communiqué", "non communique", "n/c",
		},

		DepartmentRegions: departmentRegions(),

		Countries: countrySet(
			"France", "Italie", "Espagne", "Allemagne", "Belgique", "Suisse",
			"Japon", "Royaume-Uni", "Portugal", "Luxembourg", "Pays-Bas",
			"Autriche", "Danemark", "Suède", "Finlande", "Norvège",
			"Irlande", "Grèce", "Pologne", "République tchèque", "Hongrie",
			"Roumanie", "Bulgarie", "Croatie", "Slovénie", "Slovaquie",
			"Estonie", "Lettonie", "Lituanie", "Chypre", "Malte",
			"Canada", "États-Unis", "Mexique", "Brésil", "Argentine",
			"Chili", "Colombie", "Pérou", "Chine", "Inde", "Indonésie",
			"Corée du Sud", "Australie", "Nouvelle-Zélande",
			"Afrique du Sud", "Maroc", "Tunisie", "Algérie", "Égypte",
		),

		LabelNormalization: map[string]string{
			"Ile-de-France":              "Île-de-France",
			"Ile-De-France":              "Île-de-France",
			"Rhone-Alpes":                "Rhône-Alpes",
			"Suisse (Frontalier)":        "Suisse",
			"Etats-Unis":                 "États-Unis",
			"Egypte":                     "Égypte",
			"Perou":                      "Pérou",
			"Provence-Alpes-Cote d'Azur": "Provence-Alpes-Côte d'Azur",
		},
	}
}

func countrySet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// departmentRegions covers metropolitan departments, Corsica (2A/2B) and
// the overseas 97x codes, per the post-2016 region boundaries.
func departmentRegions() map[string]string {
	regions := map[string][]string{
		"Auvergne-Rhône-Alpes":       {"01", "03", "07", "15", "26", "38", "42", "43", "63", "69", "73", "74"},
		"Bourgogne-Franche-Comté":    {"21", "25", "39", "58", "70", "71", "89", "90"},
		"Bretagne":                   {"22", "29", "35", "56"},
		"Centre-Val de Loire":        {"18", "28", "36", "37", "41", "45"},
		"Corse":                      {"2A", "2B"},
		"Grand Est":                  {"08", "10", "51", "52", "54", "55", "57", "67", "68", "88"},
		"Hauts-de-France":            {"02", "59", "60", "62", "80"},
		"Île-de-France":              {"75", "77", "78", "91", "92", "93", "94", "95"},
		"Normandie":                  {"14", "27", "50", "61", "76"},
		"Nouvelle-Aquitaine":         {"16", "17", "19", "23", "24", "33", "40", "47", "64", "79", "86", "87"},
		"Occitanie":                  {"09", "11", "12", "30", "31", "32", "34", "46", "48", "65", "66", "81", "82"},
		"Pays de la Loire":           {"44", "49", "53", "72", "85"},
		"Provence-Alpes-Côte d'Azur": {"04", "05", "06", "13", "83", "84"},
		"Guadeloupe":                 {"971"},
		"Martinique":                 {"972"},
		"Guyane":                     {"973"},
		"La Réunion":                 {"974"},
		"Mayotte":                    {"976"},
	}

	table := make(map[string]string, 101)
	for region, codes := range regions {
		for _, code := range codes {
			table[code] = region
		}
	}
	return table
}
