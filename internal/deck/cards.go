package deck

import "github.com/example/prepdeck/pkg/models"

// primeMemos are memorisation aids for the primes below 100.
var primeMemos = []models.Flashcard{
	{ID: "premier-memo-4-premiers", Front: "Quels sont les 4 premiers nombres premiers ?", Back: "2, 3, 5, 7", Category: models.CategoryPrimes, Difficulty: models.DifficultyEasy,
		Examples: []string{"Astuce : \"2, 3, 5, 7\" - facile à retenir !", "Ce sont les seuls nombres premiers à un chiffre", "Mémorisez-les par cœur : 2, 3, 5, 7"}},
	{ID: "premier-memo-pattern-unites", Front: "Par quels chiffres se terminent les nombres premiers (sauf 2 et 5) ?", Back: "1, 3, 7 ou 9", Category: models.CategoryPrimes, Difficulty: models.DifficultyEasy,
		Examples: []string{"Les nombres premiers > 5 se terminent toujours par 1, 3, 7 ou 9", "Exemples : 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47...", "Astuce : \"1, 3, 7, 9\" - les impairs sauf 5"}},
	{ID: "premier-memo-10-19", Front: "Quels sont les nombres premiers entre 10 et 19 ?", Back: "11, 13, 17, 19", Category: models.CategoryPrimes, Difficulty: models.DifficultyEasy,
		Examples: []string{"Astuce : \"11, 13, 17, 19\" - tous se terminent par 1, 3, 7, 9", "Ce sont les 4 nombres premiers de la dizaine 10-19", "Mémorisez : 11, 13, 17, 19 (4 nombres)"}},
	{ID: "premier-memo-20-29", Front: "Quels sont les nombres premiers entre 20 et 29 ?", Back: "23, 29", Category: models.CategoryPrimes, Difficulty: models.DifficultyEasy,
		Examples: []string{"Astuce : \"23, 29\" - seulement 2 nombres premiers", "21, 25, 27 ne sont pas premiers (divisibles par 3, 5, 3)", "Mémorisez : 23, 29 (2 nombres)"}},
	{ID: "premier-memo-30-39", Front: "Quels sont les nombres premiers entre 30 et 39 ?", Back: "31, 37", Category: models.CategoryPrimes, Difficulty: models.DifficultyEasy,
		Examples: []string{"Astuce : \"31, 37\" - seulement 2 nombres premiers", "33, 35, 39 ne sont pas premiers (divisibles par 3, 5, 3)", "Mémorisez : 31, 37 (2 nombres)"}},
	{ID: "premier-memo-40-49", Front: "Quels sont les nombres premiers entre 40 et 49 ?", Back: "41, 43, 47", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Astuce : \"41, 43, 47\" - 3 nombres premiers consécutifs", "Tous se terminent par 1, 3, 7", "Mémorisez : 41, 43, 47 (3 nombres)"}},
	{ID: "premier-memo-50-59", Front: "Quels sont les nombres premiers entre 50 et 59 ?", Back: "53, 59", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Astuce : \"53, 59\" - seulement 2 nombres premiers", "51, 55, 57 ne sont pas premiers (divisibles par 3, 5, 3)", "Mémorisez : 53, 59 (2 nombres)"}},
	{ID: "premier-memo-60-69", Front: "Quels sont les nombres premiers entre 60 et 69 ?", Back: "61, 67", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Astuce : \"61, 67\" - seulement 2 nombres premiers", "63, 65, 69 ne sont pas premiers (divisibles par 3, 5, 3)", "Mémorisez : 61, 67 (2 nombres)"}},
	{ID: "premier-memo-70-79", Front: "Quels sont les nombres premiers entre 70 et 79 ?", Back: "71, 73, 79", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Astuce : \"71, 73, 79\" - 3 nombres premiers", "Tous se terminent par 1, 3, 9", "Mémorisez : 71, 73, 79 (3 nombres)"}},
	{ID: "premier-memo-80-89", Front: "Quels sont les nombres premiers entre 80 et 89 ?", Back: "83, 89", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Astuce : \"83, 89\" - seulement 2 nombres premiers", "81, 85, 87 ne sont pas premiers (divisibles par 3, 5, 3)", "Mémorisez : 83, 89 (2 nombres)"}},
	{ID: "premier-memo-90-100", Front: "Quels sont les nombres premiers entre 90 et 100 ?", Back: "97", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Astuce : \"97\" - seulement 1 nombre premier", "91, 93, 95, 99 ne sont pas premiers (divisibles par 7, 3, 5, 3)", "Mémorisez : 97 (1 seul nombre)"}},
	{ID: "premier-memo-comptage", Front: "Combien y a-t-il de nombres premiers jusqu'à 100 ?", Back: "25 nombres premiers", Category: models.CategoryPrimes, Difficulty: models.DifficultyEasy,
		Examples: []string{"Répartition : 1-10: 4 | 11-20: 4 | 21-30: 2 | 31-40: 2 | 41-50: 3", "51-60: 2 | 61-70: 2 | 71-80: 3 | 81-90: 2 | 91-100: 1", "Total : 4+4+2+2+3+2+2+3+2+1 = 25"}},
	{ID: "premier-memo-jumeaux", Front: "Quels sont les paires de nombres premiers jumeaux jusqu'à 100 ?", Back: "(3,5), (5,7), (11,13), (17,19), (29,31), (41,43), (59,61), (71,73)", Category: models.CategoryPrimes, Difficulty: models.DifficultyHard,
		Examples: []string{"Nombres premiers jumeaux : différence de 2", "Exemples : 3 et 5, 11 et 13, 17 et 19...", "Astuce : Les jumeaux aident à mémoriser par paires"}},
	{ID: "premier-memo-seuls", Front: "Quels nombres premiers n'ont pas de jumeau proche (différence > 2) ?", Back: "2, 23, 37, 47, 53, 67, 79, 83, 89, 97", Category: models.CategoryPrimes, Difficulty: models.DifficultyHard,
		Examples: []string{"Ces nombres premiers sont \"isolés\"", "Ils aident à structurer la liste", "Mémorisez-les séparément"}},
	{ID: "premier-memo-recap", Front: "Récapitulatif : Combien de nombres premiers par dizaine ?", Back: "0-9: 4 | 10-19: 4 | 20-29: 2 | 30-39: 2 | 40-49: 3 | 50-59: 2 | 60-69: 2 | 70-79: 3 | 80-89: 2 | 90-99: 1", Category: models.CategoryPrimes, Difficulty: models.DifficultyMedium,
		Examples: []string{"Pattern : 4, 4, 2, 2, 3, 2, 2, 3, 2, 1", "Les dizaines avec 4 : 0-9, 10-19", "Les dizaines avec 3 : 40-49, 70-79"}},
}

var formulas = []models.Flashcard{
	{ID: "formule-aire-carre", Front: "Aire d'un carré", Back: "côté²", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-aire-rectangle", Front: "Aire d'un rectangle", Back: "longueur × largeur", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-aire-triangle", Front: "Aire d'un triangle", Back: "(base × hauteur) / 2", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-aire-cercle", Front: "Aire d'un cercle", Back: "π × r²", Category: models.CategoryFormulas, Difficulty: models.DifficultyMedium},
	{ID: "formule-perimetre-carre", Front: "Périmètre d'un carré", Back: "4 × côté", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-perimetre-rectangle", Front: "Périmètre d'un rectangle", Back: "2 × (L + l)", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-perimetre-cercle", Front: "Périmètre d'un cercle", Back: "2 × π × r", Category: models.CategoryFormulas, Difficulty: models.DifficultyMedium},
	{ID: "formule-volume-cube", Front: "Volume d'un cube", Back: "côté³", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-volume-pave", Front: "Volume d'un pavé", Back: "L × l × h", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-volume-cylindre", Front: "Volume d'un cylindre", Back: "π × r² × h", Category: models.CategoryFormulas, Difficulty: models.DifficultyMedium},
	{ID: "formule-vitesse", Front: "Vitesse moyenne", Back: "distance / temps", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-pourcentage", Front: "Pourcentage", Back: "(partie / total) × 100", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
	{ID: "formule-pythagore", Front: "Théorème de Pythagore", Back: "a² + b² = c²", Category: models.CategoryFormulas, Difficulty: models.DifficultyMedium},
	{ID: "formule-pi", Front: "Valeur de π", Back: "≈ 3.14159", Category: models.CategoryFormulas, Difficulty: models.DifficultyEasy},
}

// divisibility covers the rules for 1 to 15.
var divisibility = []models.Flashcard{
	{ID: "div-1", Front: "Divisible par 1", Back: "Tous les nombres sont divisibles par 1", Category: models.CategoryDivisibility, Difficulty: models.DifficultyEasy,
		Examples: []string{"123 est divisible par 1", "456 est divisible par 1", "Tout nombre est divisible par 1"}},
	{ID: "div-2", Front: "Divisible par 2", Back: "Le chiffre des unités est pair (0, 2, 4, 6, 8)", Category: models.CategoryDivisibility, Difficulty: models.DifficultyEasy,
		Examples: []string{"24 → unités = 4 (pair) ✓", "135 → unités = 5 (impair) ✗", "108 → unités = 8 (pair) ✓"}},
	{ID: "div-3", Front: "Divisible par 3", Back: "La somme des chiffres est divisible par 3", Category: models.CategoryDivisibility, Difficulty: models.DifficultyMedium,
		Examples: []string{"123 → 1+2+3 = 6 (divisible par 3) ✓", "145 → 1+4+5 = 10 (non divisible par 3) ✗", "789 → 7+8+9 = 24 (divisible par 3) ✓"}},
	{ID: "div-4", Front: "Divisible par 4", Back: "Les deux derniers chiffres forment un nombre divisible par 4", Category: models.CategoryDivisibility, Difficulty: models.DifficultyMedium,
		Examples: []string{"124 → 24 est divisible par 4 ✓", "135 → 35 n'est pas divisible par 4 ✗", "108 → 08 = 8, divisible par 4 ✓"}},
	{ID: "div-5", Front: "Divisible par 5", Back: "Le chiffre des unités est 0 ou 5", Category: models.CategoryDivisibility, Difficulty: models.DifficultyEasy,
		Examples: []string{"125 → unités = 5 ✓", "130 → unités = 0 ✓", "123 → unités = 3 ✗"}},
	{ID: "div-6", Front: "Divisible par 6", Back: "Divisible par 2 ET par 3", Category: models.CategoryDivisibility, Difficulty: models.DifficultyMedium,
		Examples: []string{"24 → pair (2) ✓ et 2+4=6 (3) ✓ → divisible par 6", "135 → impair ✗", "126 → pair (2) ✓ et 1+2+6=9 (3) ✓ → divisible par 6"}},
	{ID: "div-7", Front: "Divisible par 7", Back: "Prendre le dernier chiffre, le multiplier par 2, soustraire du nombre formé par les autres chiffres. Si le résultat est divisible par 7, alors le nombre initial aussi", Category: models.CategoryDivisibility, Difficulty: models.DifficultyHard,
		Examples: []string{"91 → 9 - (1×2) = 7 (divisible par 7) ✓", "84 → 8 - (4×2) = 0 (divisible par 7) ✓", "85 → 8 - (5×2) = -2 (non divisible par 7) ✗"}},
	{ID: "div-8", Front: "Divisible par 8", Back: "Les trois derniers chiffres forment un nombre divisible par 8", Category: models.CategoryDivisibility, Difficulty: models.DifficultyHard,
		Examples: []string{"1240 → 240 est divisible par 8 ✓", "1352 → 352 est divisible par 8 ✓", "1234 → 234 n'est pas divisible par 8 ✗"}},
	{ID: "div-9", Front: "Divisible par 9", Back: "La somme des chiffres est divisible par 9", Category: models.CategoryDivisibility, Difficulty: models.DifficultyMedium,
		Examples: []string{"126 → 1+2+6 = 9 (divisible par 9) ✓", "135 → 1+3+5 = 9 (divisible par 9) ✓", "145 → 1+4+5 = 10 (non divisible par 9) ✗"}},
	{ID: "div-10", Front: "Divisible par 10", Back: "Le chiffre des unités est 0", Category: models.CategoryDivisibility, Difficulty: models.DifficultyEasy,
		Examples: []string{"120 → unités = 0 ✓", "135 → unités = 5 ✗", "1000 → unités = 0 ✓"}},
	{ID: "div-11", Front: "Divisible par 11", Back: "La différence entre la somme des chiffres en position impaire et la somme des chiffres en position paire est divisible par 11", Category: models.CategoryDivisibility, Difficulty: models.DifficultyHard,
		Examples: []string{"121 → (1+1) - 2 = 0 (divisible par 11) ✓", "132 → (1+2) - 3 = 0 (divisible par 11) ✓", "123 → (1+3) - 2 = 2 (non divisible par 11) ✗"}},
	{ID: "div-12", Front: "Divisible par 12", Back: "Divisible par 3 ET par 4", Category: models.CategoryDivisibility, Difficulty: models.DifficultyMedium,
		Examples: []string{"144 → 1+4+4=9 (3) ✓ et 44 divisible par 4 ✓ → divisible par 12", "135 → 1+3+5=9 (3) ✓ mais 35 non divisible par 4 ✗", "156 → 1+5+6=12 (3) ✓ et 56 divisible par 4 ✓ → divisible par 12"}},
	{ID: "div-13", Front: "Divisible par 13", Back: "Prendre le dernier chiffre, le multiplier par 4, ajouter au nombre formé par les autres chiffres. Si le résultat est divisible par 13, alors le nombre initial aussi", Category: models.CategoryDivisibility, Difficulty: models.DifficultyHard,
		Examples: []string{"91 → 9 + (1×4) = 13 (divisible par 13) ✓", "104 → 10 + (4×4) = 26 (divisible par 13) ✓", "105 → 10 + (5×4) = 30 (non divisible par 13) ✗"}},
	{ID: "div-14", Front: "Divisible par 14", Back: "Divisible par 2 ET par 7", Category: models.CategoryDivisibility, Difficulty: models.DifficultyHard,
		Examples: []string{"28 → pair (2) ✓ et 2 - (8×2) = -14 (divisible par 7) ✓ → divisible par 14", "35 → impair ✗", "42 → pair (2) ✓ et 4 - (2×2) = 0 (divisible par 7) ✓ → divisible par 14"}},
	{ID: "div-15", Front: "Divisible par 15", Back: "Divisible par 3 ET par 5", Category: models.CategoryDivisibility, Difficulty: models.DifficultyMedium,
		Examples: []string{"135 → 1+3+5=9 (3) ✓ et unités=5 (5) ✓ → divisible par 15", "120 → 1+2+0=3 (3) ✓ et unités=0 (5) ✓ → divisible par 15", "125 → unités=5 (5) ✓ mais 1+2+5=8 (non divisible par 3) ✗"}},
}

var mentalCalculation = []models.Flashcard{
	{ID: "calc-mult-11", Front: "Comment multiplier rapidement par 11 ?", Back: "Ajouter les chiffres adjacents (ex: 23×11 = 2|(2+3)|3 = 253)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"23×11 : 2|(2+3)|3 = 253", "45×11 : 4|(4+5)|5 = 495", "Si somme > 9, reporter la retenue"}},
	{ID: "calc-mult-5", Front: "Comment multiplier rapidement par 5 ?", Back: "Diviser par 2 puis multiplier par 10 (ou ajouter un 0 et diviser par 2)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"24×5 = 24÷2×10 = 120", "37×5 = 37÷2×10 = 185", "Astuce : ×5 = ×10÷2"}},
	{ID: "calc-mult-25", Front: "Comment multiplier rapidement par 25 ?", Back: "Diviser par 4 puis multiplier par 100", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyMedium,
		Examples: []string{"28×25 = 28÷4×100 = 700", "44×25 = 44÷4×100 = 1100", "Astuce : ×25 = ×100÷4"}},
	{ID: "calc-mult-9", Front: "Comment multiplier rapidement par 9 ?", Back: "Multiplier par 10 puis soustraire le nombre (n×9 = n×10 - n)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"7×9 = 7×10 - 7 = 63", "13×9 = 13×10 - 13 = 117", "Astuce : ×9 = ×10 - nombre"}},
	{ID: "calc-pourcentage-10", Front: "Comment calculer 10% d'un nombre ?", Back: "Déplacer la virgule d'un rang vers la gauche (ou diviser par 10)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"10% de 250 = 25", "10% de 48 = 4.8", "10% de 1200 = 120"}},
	{ID: "calc-pourcentage-50", Front: "Comment calculer 50% d'un nombre ?", Back: "Diviser par 2", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"50% de 240 = 120", "50% de 75 = 37.5", "50% = la moitié"}},
	{ID: "calc-pourcentage-25", Front: "Comment calculer 25% d'un nombre ?", Back: "Diviser par 4 (ou prendre la moitié de la moitié)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"25% de 200 = 50", "25% de 120 = 30", "25% = un quart"}},
	{ID: "calc-pourcentage-75", Front: "Comment calculer 75% d'un nombre ?", Back: "Multiplier par 3 puis diviser par 4 (ou 50% + 25%)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyMedium,
		Examples: []string{"75% de 200 = 150", "75% de 80 = 60", "75% = trois quarts"}},
	{ID: "calc-pourcentage-20", Front: "Comment calculer 20% d'un nombre ?", Back: "Diviser par 5 (ou prendre 10% puis multiplier par 2)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"20% de 150 = 30", "20% de 75 = 15", "20% = un cinquième"}},
	{ID: "calc-addition-astuce", Front: "Astuce pour additionner rapidement ?", Back: "Arrondir puis ajuster (ex: 48+37 = 50+35 = 85)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"48+37 = (48+2)+(37-2) = 50+35 = 85", "Utiliser les compléments à 10", "Grouper les nombres faciles"}},
	{ID: "calc-soustraction-astuce", Front: "Astuce pour soustraire rapidement ?", Back: "Arrondir le nombre à soustraire (ex: 73-28 = 73-30+2 = 45)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"73-28 = 73-30+2 = 45", "Utiliser les compléments", "Soustraire par parties"}},
	{ID: "calc-division-astuce", Front: "Comment diviser rapidement par 4 ?", Back: "Diviser par 2 deux fois", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"84÷4 = 84÷2÷2 = 42÷2 = 21", "120÷4 = 120÷2÷2 = 60÷2 = 30", "÷4 = ÷2÷2"}},
	{ID: "calc-division-8", Front: "Comment diviser rapidement par 8 ?", Back: "Diviser par 2 trois fois", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyMedium,
		Examples: []string{"64÷8 = 64÷2÷2÷2 = 32÷2÷2 = 16÷2 = 8", "÷8 = ÷2÷2÷2"}},
	{ID: "calc-racine-carree-approche", Front: "Comment estimer rapidement une racine carrée ?", Back: "Trouver le carré parfait le plus proche (ex: √50 ≈ 7 car 7²=49)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyHard,
		Examples: []string{"√50 ≈ 7 (car 7²=49)", "√80 ≈ 9 (car 9²=81)", "Utiliser les carrés connus"}},
	{ID: "calc-mult-15", Front: "Comment multiplier rapidement par 15 ?", Back: "Multiplier par 10 puis ajouter la moitié (n×15 = n×10 + n×5)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyMedium,
		Examples: []string{"24×15 = 24×10 + 24×5 = 240 + 120 = 360", "Astuce : ×15 = ×10 + ×5"}},
	{ID: "calc-fraction-pourcentage", Front: "Fractions courantes en pourcentage ?", Back: "1/2=50% | 1/3≈33% | 1/4=25% | 1/5=20% | 1/10=10% | 3/4=75% | 2/3≈67%", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"1/2 = 50%", "1/4 = 25%", "3/4 = 75%"}},
}

var logicalReasoning = []models.Flashcard{
	{ID: "logique-si-alors", Front: "Si A alors B. Si B est faux, que peut-on conclure sur A ?", Back: "A est faux (contraposée : si non-B alors non-A)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyMedium,
		Examples: []string{"Si \"il pleut\" alors \"sol mouillé\"", "Si \"sol sec\" alors \"il ne pleut pas\"", "C'est la contraposée"}},
	{ID: "logique-si-alors-erreur", Front: "Si A alors B. Si B est vrai, que peut-on conclure sur A ?", Back: "Rien ! C'est une erreur classique (affirmation du conséquent)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyHard,
		Examples: []string{"Si \"il pleut\" alors \"sol mouillé\"", "Si \"sol mouillé\", on ne peut pas conclure qu'il pleut", "Le sol peut être mouillé pour d'autres raisons"}},
	{ID: "logique-et-ou", Front: "Différence entre \"ET\" et \"OU\" en logique ?", Back: "ET = les deux conditions | OU = au moins une condition (inclusif)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyEasy,
		Examples: []string{"A ET B : les deux doivent être vrais", "A OU B : au moins un doit être vrai", "Attention : OU est inclusif (pas exclusif)"}},
	{ID: "logique-negation-et", Front: "La négation de \"A ET B\" est ?", Back: "non-A OU non-B (loi de De Morgan)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyHard,
		Examples: []string{"non(A ET B) = non-A OU non-B", "Exemple : \"pas (riche ET célèbre)\" = \"pauvre OU inconnu\""}},
	{ID: "logique-negation-ou", Front: "La négation de \"A OU B\" est ?", Back: "non-A ET non-B (loi de De Morgan)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyHard,
		Examples: []string{"non(A OU B) = non-A ET non-B", "Exemple : \"pas (riche OU célèbre)\" = \"pauvre ET inconnu\""}},
	{ID: "logique-necessaire-suffisant", Front: "Différence entre condition nécessaire et suffisante ?", Back: "Nécessaire : sans elle, impossible | Suffisante : avec elle, garanti", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Avoir 18 ans\" est nécessaire pour voter", "\"Être président\" est suffisant pour avoir le pouvoir", "Une condition peut être les deux"}},
	{ID: "logique-syllogisme", Front: "Qu'est-ce qu'un syllogisme valide ?", Back: "Si A→B et B→C, alors A→C (transitivité)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyMedium,
		Examples: []string{"Si \"tous les chats sont des animaux\" et \"tous les animaux respirent\"", "Alors \"tous les chats respirent\"", "C'est la transitivité"}},
	{ID: "logique-contradiction", Front: "Si on a \"A ET non-A\", que peut-on conclure ?", Back: "C'est une contradiction, donc l'hypothèse de départ est fausse", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyHard,
		Examples: []string{"Si on arrive à \"X est vrai ET X est faux\"", "Alors l'hypothèse initiale est fausse", "C'est la preuve par l'absurde"}},
	{ID: "logique-tous-quelques", Front: "Différence entre \"tous\" et \"quelques\" ?", Back: "\"Tous\" = 100% | \"Quelques\" = au moins un (peut être tous)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Tous les X sont Y\" = 100%", "\"Quelques X sont Y\" = au moins 1", "\"Quelques\" n'exclut pas \"tous\""}},
	{ID: "logique-aucun", Front: "Logique de \"aucun\" ?", Back: "\"Aucun X n'est Y\" = 0% = tous les X ne sont pas Y", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Aucun chat n'est chien\" = 0 chat est chien", "Opposé de \"tous\"", "Négation totale"}},
}

var expression = []models.Flashcard{
	{ID: "expr-accord-participe", Front: "Règle d'accord du participe passé avec \"avoir\" ?", Back: "S'accorde avec le COD si placé avant le verbe, sinon invariable", Category: models.CategoryExpression, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Les fleurs que j'ai cueillies\" (COD avant)", "\"J'ai cueilli des fleurs\" (COD après)", "Avec \"être\" : toujours accordé"}},
	{ID: "expr-accord-etre", Front: "Règle d'accord du participe passé avec \"être\" ?", Back: "Toujours accordé avec le sujet", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Elle est partie\" (accord avec \"elle\")", "\"Ils sont arrivés\" (accord avec \"ils\")", "Toujours accordé avec le sujet"}},
	{ID: "expr-subjonctif", Front: "Quand utiliser le subjonctif ?", Back: "Après \"il faut que\", \"bien que\", \"pour que\", \"avant que\", expressions de doute/volonté", Category: models.CategoryExpression, Difficulty: models.DifficultyHard,
		Examples: []string{"\"Il faut que tu viennes\" (subjonctif)", "\"Bien qu'il pleuve\" (subjonctif)", "\"Je doute qu'il vienne\" (subjonctif)"}},
	{ID: "expr-ces-ses", Front: "Différence entre \"ces\" et \"ses\" ?", Back: "\"ces\" = démonstratif (ces livres) | \"ses\" = possessif (ses livres)", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Ces livres\" = ces livres-là (démonstratif)", "\"Ses livres\" = les livres à lui (possessif)", "Test : remplacer par \"les siens\""}},
	{ID: "expr-a-accents", Front: "Quand utiliser \"à\" vs \"a\" ?", Back: "\"à\" = préposition | \"a\" = verbe avoir (3e personne)", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Il va à Paris\" (préposition)", "\"Il a faim\" (verbe avoir)", "Test : remplacer par \"avait\""}},
	{ID: "expr-ou-ou", Front: "Différence entre \"ou\" et \"où\" ?", Back: "\"ou\" = conjonction (ou bien) | \"où\" = pronom/adverbe de lieu", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Tu veux du thé ou du café ?\" (conjonction)", "\"Où vas-tu ?\" (lieu)", "Test : remplacer par \"ou bien\""}},
	{ID: "expr-accord-nombre", Front: "Règle d'accord avec \"la plupart\" ?", Back: "Accord avec le complément : \"la plupart des gens sont\" (pluriel)", Category: models.CategoryExpression, Difficulty: models.DifficultyHard,
		Examples: []string{"\"La plupart des gens sont\" (accord avec \"gens\")", "\"La plupart du temps est\" (accord avec \"temps\")", "Accord avec le complément"}},
	{ID: "expr-accord-collectif", Front: "Règle d'accord avec \"une foule de\" ?", Back: "Accord avec le complément : \"une foule de gens sont\"", Category: models.CategoryExpression, Difficulty: models.DifficultyHard,
		Examples: []string{"\"Une foule de gens sont\" (accord avec \"gens\")", "\"Une foule de spectateurs applaudissent\"", "Accord avec le complément"}},
	{ID: "expr-accord-tout", Front: "Accord de \"tout\" ?", Back: "\"tout\" = invariable sauf devant un nom féminin singulier : \"toute la journée\"", Category: models.CategoryExpression, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Tout le monde\" (masculin, invariable)", "\"Toute la journée\" (féminin, accordé)", "\"Tous les jours\" (pluriel, accordé)"}},
	{ID: "expr-accord-meme", Front: "Accord de \"même\" ?", Back: "\"même\" = adjectif (accordé) | \"même\" = adverbe (invariable)", Category: models.CategoryExpression, Difficulty: models.DifficultyHard,
		Examples: []string{"\"Les mêmes personnes\" (adjectif, accordé)", "\"Même les enfants\" (adverbe, invariable)", "Test : peut-on le supprimer ?"}},
	{ID: "expr-accord-avec", Front: "Règle d'accord avec \"avec\" ?", Back: "Avec \"avec\", l'accord se fait généralement avec le sujet (pas avec le complément)", Category: models.CategoryExpression, Difficulty: models.DifficultyHard,
		Examples: []string{"\"L'équipe avec ses supporters est venue\" (accord avec \"équipe\")", "Exception : si \"avec\" = \"et\", accord au pluriel"}},
	{ID: "expr-accord-demi", Front: "Accord de \"demi\" ?", Back: "\"demi\" = invariable avant le nom, accordé après : \"une demi-heure\" mais \"une heure et demie\"", Category: models.CategoryExpression, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Une demi-heure\" (avant, invariable)", "\"Une heure et demie\" (après, accordé)", "Règle : avant = invariable, après = accordé"}},
	{ID: "expr-accord-quelque", Front: "Accord de \"quelque\" ?", Back: "\"quelque\" = invariable devant un nombre | \"quelques\" = pluriel devant un nom", Category: models.CategoryExpression, Difficulty: models.DifficultyHard,
		Examples: []string{"\"Quelque 200 personnes\" (devant nombre, invariable)", "\"Quelques personnes\" (devant nom, pluriel)"}},
}

var readingComprehension = []models.Flashcard{
	{ID: "comp-lecture-rapide", Front: "Technique de lecture efficace pour le Tage Mage ?", Back: "Lire d'abord les questions, puis le texte en cherchant les réponses", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyEasy,
		Examples: []string{"Lire les questions en premier", "Survoler le texte pour repérer les idées principales", "Chercher les mots-clés des questions"}},
	{ID: "comp-idee-principale", Front: "Comment identifier l'idée principale d'un texte ?", Back: "Chercher la thèse centrale, souvent dans l'introduction ou la conclusion", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyMedium,
		Examples: []string{"Lire le premier et dernier paragraphe", "Identifier le message central", "Éviter les détails secondaires"}},
	{ID: "comp-mots-cles", Front: "Pourquoi repérer les mots-clés est important ?", Back: "Ils indiquent les concepts importants et les relations logiques", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyEasy,
		Examples: []string{"Mots de liaison : \"mais\", \"donc\", \"cependant\"", "Mots de cause : \"car\", \"parce que\", \"en effet\"", "Mots de conséquence : \"ainsi\", \"donc\", \"par conséquent\""}},
	{ID: "comp-ton-auteur", Front: "Comment identifier le ton de l'auteur ?", Back: "Analyser les adjectifs, les verbes, et les figures de style utilisées", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyHard,
		Examples: []string{"Ton critique : \"prétend\", \"affirme sans preuve\"", "Ton neutre : faits objectifs", "Ton élogieux : \"remarquable\", \"exceptionnel\""}},
	{ID: "comp-inference", Front: "Qu'est-ce qu'une inférence ?", Back: "Conclusion logique déduite du texte sans être explicitement écrite", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyHard,
		Examples: []string{"Si le texte dit \"il pleuvait\", on infère \"le sol était mouillé\"", "Déduire à partir des indices du texte", "Ne pas inventer, rester fidèle au texte"}},
	{ID: "comp-contradiction", Front: "Comment repérer une contradiction dans un texte ?", Back: "Identifier deux affirmations qui s'excluent mutuellement", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Tous\" vs \"aucun\"", "\"Toujours\" vs \"jamais\"", "Chercher les oppositions logiques"}},
	{ID: "comp-synonyme-antonyme", Front: "Comment identifier synonymes et antonymes dans un texte ?", Back: "Synonyme = même sens | Antonyme = sens opposé", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyEasy,
		Examples: []string{"Synonymes : \"rapide\" et \"vite\"", "Antonymes : \"rapide\" et \"lent\"", "Aide à comprendre le sens"}},
	{ID: "comp-structure-texte", Front: "Structure classique d'un texte argumentatif ?", Back: "Introduction (thèse) → Développement (arguments) → Conclusion (synthèse)", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyMedium,
		Examples: []string{"Introduction : présente la thèse", "Développement : arguments pour/contre", "Conclusion : synthèse et ouverture"}},
}

var minimalConditions = []models.Flashcard{
	{ID: "cond-necessaire", Front: "Qu'est-ce qu'une condition nécessaire ?", Back: "Condition sans laquelle quelque chose ne peut pas se produire", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Avoir 18 ans\" est nécessaire pour voter", "Sans cette condition, c'est impossible", "Mais elle ne garantit pas le résultat"}},
	{ID: "cond-suffisante", Front: "Qu'est-ce qu'une condition suffisante ?", Back: "Condition qui garantit qu'un événement se produise", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Être président\" est suffisant pour avoir le pouvoir", "Cette condition garantit le résultat", "Mais d'autres conditions peuvent aussi suffire"}},
	{ID: "cond-necessaire-suffisante", Front: "Qu'est-ce qu'une condition nécessaire ET suffisante ?", Back: "Condition qui est à la fois nécessaire et suffisante (équivalence)", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyHard,
		Examples: []string{"\"Être un triangle équilatéral\" est nécessaire et suffisant pour \"avoir 3 côtés égaux\"", "Si et seulement si", "Équivalence logique"}},
	{ID: "cond-erreur-necessaire", Front: "Erreur classique : confondre nécessaire et suffisant", Back: "Ne pas conclure qu'une condition suffisante est nécessaire", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyHard,
		Examples: []string{"Si \"A suffit pour B\", on ne peut pas dire \"A est nécessaire\"", "Plusieurs conditions peuvent suffire", "Attention aux confusions"}},
	{ID: "cond-tous-sauf", Front: "Logique de \"tous... sauf\" ?", Back: "Tous les X sont Y, sauf Z signifie : tous les X sauf Z sont Y", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Tous les jours sauf dimanche\" = lundi à samedi", "Identifier l'exception", "Le reste suit la règle générale"}},
	{ID: "cond-au-moins", Front: "Logique de \"au moins\" ?", Back: "\"Au moins N\" signifie \"N ou plus\" (minimum inclus)", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Au moins 3\" = 3, 4, 5, 6...", "\"Au moins un\" = 1 ou plus", "Minimum inclus"}},
	{ID: "cond-au-plus", Front: "Logique de \"au plus\" ?", Back: "\"Au plus N\" signifie \"N ou moins\" (maximum inclus)", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Au plus 5\" = 0, 1, 2, 3, 4, 5", "\"Au plus un\" = 0 ou 1", "Maximum inclus"}},
	{ID: "cond-seulement-si", Front: "Logique de \"seulement si\" ?", Back: "\"A seulement si B\" = B est nécessaire pour A (équivalent à \"si A alors B\")", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyHard,
		Examples: []string{"\"Tu réussis seulement si tu travailles\" = si tu réussis, alors tu travailles", "\"Seulement si\" = condition nécessaire"}},
	{ID: "cond-si-et-seulement-si", Front: "Logique de \"si et seulement si\" ?", Back: "\"A si et seulement si B\" = A et B sont équivalents (nécessaire ET suffisant)", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyHard,
		Examples: []string{"\"X est pair si et seulement si X est divisible par 2\"", "Équivalence logique", "Les deux conditions sont équivalentes"}},
}

var problemSolving = []models.Flashcard{
	{ID: "resol-etape-1", Front: "Première étape pour résoudre un problème ?", Back: "Lire attentivement l'énoncé et identifier les données", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"Lire plusieurs fois si nécessaire", "Surligner les informations importantes", "Identifier ce qui est demandé"}},
	{ID: "resol-inconnues", Front: "Comment identifier les inconnues dans un problème ?", Back: "Repérer ce qui est demandé et définir les variables", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Combien coûte...\" → inconnue = prix", "\"Quel est l'âge...\" → inconnue = âge", "Définir clairement les variables"}},
	{ID: "resol-equation", Front: "Comment traduire un problème en équation ?", Back: "Identifier les relations entre les données et les inconnues", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"Le double de X\" = 2X", "\"X de plus que Y\" = X = Y + ...", "\"X fois plus que Y\" = X = Y × ..."}},
	{ID: "resol-verification", Front: "Pourquoi vérifier la solution est important ?", Back: "S'assurer que la solution répond à toutes les conditions du problème", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"Vérifier que la solution est logique", "Replacer dans l'énoncé", "Vérifier les contraintes"}},
	{ID: "resol-proportion", Front: "Comment résoudre un problème de proportionnalité ?", Back: "Utiliser le produit en croix ou le coefficient de proportionnalité", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyMedium,
		Examples: []string{"Si A/B = C/D, alors A×D = B×C", "Coefficient = résultat / donnée", "Tableau de proportionnalité"}},
	{ID: "resol-pourcentage", Front: "Comment calculer un pourcentage d'augmentation ?", Back: "((Valeur finale - Valeur initiale) / Valeur initiale) × 100", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyMedium,
		Examples: []string{"De 100 à 120 : ((120-100)/100)×100 = 20%", "Augmentation de 20%", "Formule : (ΔV / V_initial) × 100"}},
	{ID: "resol-vitesse", Front: "Formule de la vitesse moyenne ?", Back: "Vitesse = Distance / Temps", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"V = D / T", "Distance = Vitesse × Temps", "Temps = Distance / Vitesse"}},
	{ID: "resol-pourcentage-inverse", Front: "Si un prix augmente de 20%, puis baisse de 20%, retrouve-t-on le prix initial ?", Back: "Non ! Le prix final est inférieur (effet de la variation sur une base différente)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyHard,
		Examples: []string{"100€ + 20% = 120€", "120€ - 20% = 96€ (pas 100€)", "Les pourcentages ne s'annulent pas"}},
	{ID: "resol-partage", Front: "Comment partager proportionnellement ?", Back: "Calculer le total des parts, puis chaque part = (sa valeur / total) × montant total", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyHard,
		Examples: []string{"Partager 100€ selon 2:3:5", "Total parts = 2+3+5 = 10", "Premier : (2/10)×100 = 20€"}},
	{ID: "resol-pourcentage-variation", Front: "Comment calculer une valeur après variation de pourcentage ?", Back: "Valeur finale = Valeur initiale × (1 ± pourcentage/100)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyMedium,
		Examples: []string{"100€ + 20% = 100 × 1.20 = 120€", "100€ - 15% = 100 × 0.85 = 85€", "Formule : V_final = V_initial × (1 ± %)"}},
	{ID: "resol-moyenne", Front: "Comment calculer une moyenne ?", Back: "Moyenne = (somme des valeurs) / (nombre de valeurs)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"Moyenne de 10, 15, 20 = (10+15+20)/3 = 15", "Formule : Σ valeurs / n"}},
	{ID: "resol-pourcentage-retour", Front: "Si un prix baisse de X%, de quel % doit-il remonter pour revenir au prix initial ?", Back: "Il doit remonter de plus de X% (car la base a changé)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyHard,
		Examples: []string{"100€ - 20% = 80€", "Pour revenir à 100€ : (100-80)/80 = 25% (pas 20%)", "Les pourcentages ne sont pas symétriques"}},
}

// workedExamples are exam-style questions spread over several categories.
var workedExamples = []models.Flashcard{
	{ID: "test-calc-1", Front: "47 × 11 = ?", Back: "517 (4|(4+7)|7 = 4|11|7, retenue → 517)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyMedium,
		Examples: []string{"Méthode: Additionner chiffres adjacents", "4+7 = 11, donc retenue", "Résultat: 517"}},
	{ID: "test-calc-2", Front: "15% de 240 = ?", Back: "36 (10% = 24, 5% = 12, donc 15% = 36)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"10% de 240 = 24", "5% de 240 = 12", "15% = 10% + 5% = 36"}},
	{ID: "test-calc-3", Front: "Un prix passe de 80€ à 100€. Augmentation en % ?", Back: "25% ((100-80)/80 × 100 = 20/80 × 100 = 25%)", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyMedium,
		Examples: []string{"Formule: ((Final - Initial) / Initial) × 100", "((100-80)/80) × 100", "= 20/80 × 100 = 25%"}},
	{ID: "test-logique-1", Front: "Si \"A→B\" est vrai et B est faux, que peut-on dire de A ?", Back: "A est faux (contraposée: si non-B alors non-A)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyMedium,
		Examples: []string{"Si \"il pleut → sol mouillé\" et \"sol sec\"", "Alors \"il ne pleut pas\"", "C'est la contraposée"}},
	{ID: "test-logique-2", Front: "La négation de \"Tous les X sont Y\" est ?", Back: "\"Au moins un X n'est pas Y\"", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyHard,
		Examples: []string{"non(∀x P(x)) = ∃x non-P(x)", "Exemple: \"Tous chats sont noirs\" → \"Au moins un chat n'est pas noir\""}},
	{ID: "test-expr-1", Front: "\"Les fleurs que j'ai (cueilli/cueillies)\" ?", Back: "cueillies (COD \"que\" placé avant → accordé)", Category: models.CategoryExpression, Difficulty: models.DifficultyMedium,
		Examples: []string{"Test: \"J'ai cueilli quoi ?\" → \"que\" (COD avant)", "Donc accordé avec \"fleurs\"", "Règle: COD avant = accordé"}},
	{ID: "test-expr-2", Front: "\"Il (a/à) besoin d'aide\" ?", Back: "a (verbe avoir: \"Il avait besoin\" ✓)", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"Test: Remplacer par \"avait\"", "\"Il avait besoin\" ✓ donc \"a\"", "\"Il va à Paris\" → \"Il va avait Paris\" ✗ donc \"à\""}},
	{ID: "test-resol-1", Front: "Partager 120€ selon 1:2:3", Back: "20€, 40€, 60€ (Total parts = 6, donc 1/6, 2/6, 3/6)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyMedium,
		Examples: []string{"Total parts = 1+2+3 = 6", "1ère: (1/6) × 120 = 20€", "2ème: (2/6) × 120 = 40€", "3ème: (3/6) × 120 = 60€"}},
	{ID: "test-resol-2", Front: "Un train fait 240 km en 2h. Vitesse ?", Back: "120 km/h (V = D/T = 240/2 = 120)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"Formule: Vitesse = Distance / Temps", "V = 240 / 2", "V = 120 km/h"}},
	{ID: "test-resol-3", Front: "Si un prix augmente de 10% puis baisse de 10%, retrouve-t-on le prix initial ?", Back: "NON (100€ → 110€ → 99€)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyHard,
		Examples: []string{"100€ + 10% = 110€", "110€ - 10% = 99€", "Les pourcentages ne s'annulent pas car la base change"}},
}

// essentialConcepts restate key rules from the cheat sheets. The "seulement si"
// card lives in minimalConditions.
var essentialConcepts = []models.Flashcard{
	{ID: "calc-verif-parite", Front: "Comment vérifier rapidement un calcul ?", Back: "Vérifier la parité (pair/impair) et l'ordre de grandeur", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"Pair × Pair = Pair", "Impair × Impair = Impair", "Vérifier si résultat ≈ 100, 1000, etc."}},
	{ID: "calc-eliminer-zeros", Front: "Astuce pour simplifier les calculs ?", Back: "Éliminer les zéros en fin de calcul", Category: models.CategoryMentalCalculation, Difficulty: models.DifficultyEasy,
		Examples: []string{"1200 × 50 = 12 × 5 × 1000 = 60000", "Simplifier avant de calculer"}},
	{ID: "logique-table-verite", Front: "Table de vérité de \"Si P alors Q\" (P→Q) ?", Back: "V→V=V, V→F=F, F→V=V, F→F=V (Faux seulement si P vrai ET Q faux)", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyHard,
		Examples: []string{"Si P vrai et Q vrai → Vrai", "Si P vrai et Q faux → Faux", "Si P faux → Toujours Vrai"}},
	{ID: "logique-diagramme-venn", Front: "Comment utiliser un diagramme de Venn ?", Back: "Dessiner des cercles pour représenter les ensembles, intersection = éléments communs", Category: models.CategoryLogicalReasoning, Difficulty: models.DifficultyMedium,
		Examples: []string{"Cercle A = étudiants", "Cercle B = sportifs", "Intersection = étudiants sportifs"}},
	{ID: "expr-test-a-à", Front: "Test pour distinguer \"a\" et \"à\" ?", Back: "Remplacer par \"avait\" - si ça marche = \"a\" (verbe), sinon = \"à\" (préposition)", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Il a faim\" → \"Il avait faim\" ✓ = \"a\"", "\"Il va à Paris\" → \"Il va avait Paris\" ✗ = \"à\""}},
	{ID: "expr-test-ou-où", Front: "Test pour distinguer \"ou\" et \"où\" ?", Back: "Remplacer par \"ou bien\" - si ça marche = \"ou\" (conjonction), sinon = \"où\" (lieu)", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Thé ou café\" → \"Thé ou bien café\" ✓ = \"ou\"", "\"Où vas-tu ?\" → \"Ou bien vas-tu ?\" ✗ = \"où\""}},
	{ID: "expr-test-ces-ses", Front: "Test pour distinguer \"ces\" et \"ses\" ?", Back: "Remplacer par \"les siens\" - si ça marche = \"ses\" (possessif), sinon = \"ces\" (démonstratif)", Category: models.CategoryExpression, Difficulty: models.DifficultyEasy,
		Examples: []string{"\"Ses livres\" → \"les siens\" ✓ = \"ses\"", "\"Ces livres\" → \"les siens\" ✗ = \"ces\""}},
	{ID: "expr-cod-avant-apres", Front: "Comment savoir si le COD est avant ou après le verbe ?", Back: "Poser la question \"J'ai fait QUOI ?\" - si la réponse est avant le verbe, accordé", Category: models.CategoryExpression, Difficulty: models.DifficultyMedium,
		Examples: []string{"\"J'ai cueilli des fleurs\" → QUOI ? \"des fleurs\" (après) = invariable", "\"Les fleurs que j'ai cueillies\" → QUOI ? \"que\" (avant) = accordé"}},
	{ID: "comp-methode-lecture", Front: "Méthode efficace pour la compréhension de textes ?", Back: "1. Lire les questions d'abord (30 sec) 2. Lire le texte 3. Chercher les réponses", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyEasy,
		Examples: []string{"Lire les questions en premier oriente la lecture", "Gain de temps énorme"}},
	{ID: "comp-idee-principale-ou", Front: "Où trouver l'idée principale d'un texte ?", Back: "Dans l'introduction (1er paragraphe) OU la conclusion (dernier paragraphe)", Category: models.CategoryReadingComprehension, Difficulty: models.DifficultyEasy,
		Examples: []string{"Souvent dans le 1er paragraphe", "Ou dans le dernier paragraphe", "Éviter les détails du milieu"}},
	{ID: "cond-test-necessaire", Front: "Comment tester si une condition est nécessaire ?", Back: "Retirer la condition - si le résultat devient impossible, elle est nécessaire", Category: models.CategoryMinimalConditions, Difficulty: models.DifficultyMedium,
		Examples: []string{"Retirer \"avoir 18 ans\" → vote impossible → nécessaire", "Retirer \"être français\" → vote impossible → nécessaire"}},
	{ID: "resol-methode-generale", Front: "Méthode générale pour résoudre un problème ?", Back: "1. Lire 2 fois 2. Identifier données/inconnue 3. Choisir méthode 4. Résoudre 5. Vérifier", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyEasy,
		Examples: []string{"Lire 2 fois évite les erreurs", "Vérifier en replaçant dans l'énoncé"}},
	{ID: "resol-pourcentage-piege", Front: "Piège classique avec les pourcentages successifs ?", Back: "100€ + 20% puis -20% ≠ 100€ (120€ - 20% = 96€) - les pourcentages ne s'annulent pas", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyHard,
		Examples: []string{"100€ + 20% = 120€", "120€ - 20% = 96€ (pas 100€)", "La base change à chaque fois"}},
	{ID: "resol-vitesse-moyenne-piege", Front: "Piège avec la vitesse moyenne ?", Back: "Vitesse moyenne ≠ moyenne des vitesses (Distance totale / Temps total)", Category: models.CategoryProblemSolving, Difficulty: models.DifficultyHard,
		Examples: []string{"60 km en 2h (30 km/h) puis 40 km en 1h (40 km/h)", "Moyenne des vitesses = 35 km/h ✗", "Vitesse moyenne = 100 km / 3h = 33.3 km/h ✓"}},
}
