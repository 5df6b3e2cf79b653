package models

import "sort"

// Communes is the fixed list of Algiers delivery zones an order may target.
var Communes = func() []string {
	c := []string{
		"Alger Centre", "Sidi M'Hamed", "El Madania", "Belouizdad", "Bab El Oued",
		"Bologhine", "Casbah", "Oued Koriche", "Bir Mourad Rais", "El Biar",
		"Bouzareah", "Ben Aknoun", "Hydra", "El Achour", "Draria", "Baba Hassen",
		"Douera", "Kharacia", "Saoula", "Birtouta", "Ouled Chebel",
		"Tessala El Merdja", "Birkhadem", "Djasr Kasentina", "El Harrach",
		"Oued Smar", "Bourouba", "Hussein Dey", "Kouba", "Bachedjerah",
		"Dar El Beida", "Bab Ezzouar", "Bordj El Kiffan", "Bordj El Bahri",
		"El Marsa", "Mohammadia", "Rouiba", "Reghaia", "Ain Taya", "Heuraoua",
		"Ain Benian", "Cheraga", "Ouled Fayet", "El Hammamet", "Staoueli",
		"Zeralda", "Mahelma", "Rahmania", "Souidania", "Beni Messous",
		"Les Eucalyptus", "Sidi Moussa", "Baraki", "Meftah", "Larbaa",
	}
	sort.Strings(c)
	return c
}()

// ValidCommune reports whether name is a known delivery zone.
func ValidCommune(name string) bool {
	i := sort.SearchStrings(Communes, name)
	return i < len(Communes) && Communes[i] == name
}
