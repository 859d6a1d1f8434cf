package phone

// countries is the built-in dialling-rule table. Order is load-bearing:
// resolution returns the first entry whose prefix and national length both
// match, so more specific NANP prefixes sit above the shared "1" of the US
// and Canada, and territories sharing a prefix (GB and GB-CYM, RU and KZ)
// are disambiguated purely by position. Keep it that way.
//
// The data is a simplified approximation of real numbering plans: one entry
// per territory with the handful of national lengths seen in practice, not
// a full ITU data set.
var countries = []Country{
	// North American Numbering Plan: specific territories first, then the
	// shared country code 1.
	{Name: "Bahamas", Code: "BS", Prefix: 1242, PhoneLengths: []int{7}},
	{Name: "Barbados", Code: "BB", Prefix: 1246, PhoneLengths: []int{7}},
	{Name: "Anguilla", Code: "AI", Prefix: 1264, PhoneLengths: []int{7}},
	{Name: "Antigua and Barbuda", Code: "AG", Prefix: 1268, PhoneLengths: []int{7}},
	{Name: "British Virgin Islands", Code: "VG", Prefix: 1284, PhoneLengths: []int{7}},
	{Name: "U.S. Virgin Islands", Code: "VI", Prefix: 1340, PhoneLengths: []int{7}},
	{Name: "Cayman Islands", Code: "KY", Prefix: 1345, PhoneLengths: []int{7}},
	{Name: "Bermuda", Code: "BM", Prefix: 1441, PhoneLengths: []int{7}},
	{Name: "Grenada", Code: "GD", Prefix: 1473, PhoneLengths: []int{7}},
	{Name: "Turks and Caicos Islands", Code: "TC", Prefix: 1649, PhoneLengths: []int{7}},
	{Name: "Montserrat", Code: "MS", Prefix: 1664, PhoneLengths: []int{7}},
	{Name: "Northern Mariana Islands", Code: "MP", Prefix: 1670, PhoneLengths: []int{7}},
	{Name: "Guam", Code: "GU", Prefix: 1671, PhoneLengths: []int{7}},
	{Name: "American Samoa", Code: "AS", Prefix: 1684, PhoneLengths: []int{7}},
	{Name: "Sint Maarten", Code: "SX", Prefix: 1721, PhoneLengths: []int{7}},
	{Name: "Saint Lucia", Code: "LC", Prefix: 1758, PhoneLengths: []int{7}},
	{Name: "Dominica", Code: "DM", Prefix: 1767, PhoneLengths: []int{7}},
	{Name: "Saint Vincent and the Grenadines", Code: "VC", Prefix: 1784, PhoneLengths: []int{7}},
	{Name: "Puerto Rico", Code: "PR", Prefix: 1787, PhoneLengths: []int{7}},
	{Name: "Dominican Republic", Code: "DO", Prefix: 1809, PhoneLengths: []int{7}},
	{Name: "Dominican Republic", Code: "DO", Prefix: 1829, PhoneLengths: []int{7}},
	{Name: "Dominican Republic", Code: "DO", Prefix: 1849, PhoneLengths: []int{7}},
	{Name: "Trinidad and Tobago", Code: "TT", Prefix: 1868, PhoneLengths: []int{7}},
	{Name: "Saint Kitts and Nevis", Code: "KN", Prefix: 1869, PhoneLengths: []int{7}},
	{Name: "Jamaica", Code: "JM", Prefix: 1876, PhoneLengths: []int{7}},
	{Name: "United States", Code: "US", Prefix: 1, PhoneLengths: []int{10}},
	{Name: "Canada", Code: "CA", Prefix: 1, PhoneLengths: []int{10}},

	// Europe.
	{Name: "United Kingdom", Code: "GB", Prefix: 44, PhoneLengths: []int{10, 11}},
	{Name: "Wales", Code: "GB-CYM", Prefix: 44, PhoneLengths: []int{10, 11}},
	{Name: "Ireland", Code: "IE", Prefix: 353, PhoneLengths: []int{9}},
	{Name: "France", Code: "FR", Prefix: 33, PhoneLengths: []int{9, 10}},
	{Name: "Germany", Code: "DE", Prefix: 49, PhoneLengths: []int{10, 11}},
	{Name: "Austria", Code: "AT", Prefix: 43, PhoneLengths: []int{10, 11}},
	{Name: "Switzerland", Code: "CH", Prefix: 41, PhoneLengths: []int{9}},
	{Name: "Belgium", Code: "BE", Prefix: 32, PhoneLengths: []int{8, 9, 10}},
	{Name: "Netherlands", Code: "NL", Prefix: 31, PhoneLengths: []int{9}},
	{Name: "Luxembourg", Code: "LU", Prefix: 352, PhoneLengths: []int{8, 9}},
	{Name: "Spain", Code: "ES", Prefix: 34, PhoneLengths: []int{9}},
	{Name: "Portugal", Code: "PT", Prefix: 351, PhoneLengths: []int{9}},
	{Name: "Italy", Code: "IT", Prefix: 39, PhoneLengths: []int{9, 10}},
	{Name: "San Marino", Code: "SM", Prefix: 378, PhoneLengths: []int{9}},
	{Name: "Vatican City", Code: "VA", Prefix: 379, PhoneLengths: []int{9}},
	{Name: "Monaco", Code: "MC", Prefix: 377, PhoneLengths: []int{8, 9}},
	{Name: "Andorra", Code: "AD", Prefix: 376, PhoneLengths: []int{6}},
	{Name: "Gibraltar", Code: "GI", Prefix: 350, PhoneLengths: []int{8}},
	{Name: "Malta", Code: "MT", Prefix: 356, PhoneLengths: []int{8}},
	{Name: "Greece", Code: "GR", Prefix: 30, PhoneLengths: []int{10}},
	{Name: "Cyprus", Code: "CY", Prefix: 357, PhoneLengths: []int{8}},
	{Name: "Denmark", Code: "DK", Prefix: 45, PhoneLengths: []int{8}},
	{Name: "Sweden", Code: "SE", Prefix: 46, PhoneLengths: []int{9}},
	{Name: "Norway", Code: "NO", Prefix: 47, PhoneLengths: []int{8}},
	{Name: "Finland", Code: "FI", Prefix: 358, PhoneLengths: []int{9, 10}},
	{Name: "Iceland", Code: "IS", Prefix: 354, PhoneLengths: []int{7}},
	{Name: "Faroe Islands", Code: "FO", Prefix: 298, PhoneLengths: []int{6}},
	{Name: "Greenland", Code: "GL", Prefix: 299, PhoneLengths: []int{6}},
	{Name: "Poland", Code: "PL", Prefix: 48, PhoneLengths: []int{9}},
	{Name: "Czech Republic", Code: "CZ", Prefix: 420, PhoneLengths: []int{9}},
	{Name: "Slovakia", Code: "SK", Prefix: 421, PhoneLengths: []int{9}},
	{Name: "Liechtenstein", Code: "LI", Prefix: 423, PhoneLengths: []int{7}},
	{Name: "Hungary", Code: "HU", Prefix: 36, PhoneLengths: []int{9}},
	{Name: "Romania", Code: "RO", Prefix: 40, PhoneLengths: []int{9}},
	{Name: "Bulgaria", Code: "BG", Prefix: 359, PhoneLengths: []int{8, 9}},
	{Name: "Albania", Code: "AL", Prefix: 355, PhoneLengths: []int{9}},
	{Name: "Croatia", Code: "HR", Prefix: 385, PhoneLengths: []int{8, 9}},
	{Name: "Slovenia", Code: "SI", Prefix: 386, PhoneLengths: []int{8}},
	{Name: "Bosnia and Herzegovina", Code: "BA", Prefix: 387, PhoneLengths: []int{8}},
	{Name: "Montenegro", Code: "ME", Prefix: 382, PhoneLengths: []int{8}},
	{Name: "North Macedonia", Code: "MK", Prefix: 389, PhoneLengths: []int{8}},
	{Name: "Serbia", Code: "RS", Prefix: 381, PhoneLengths: []int{8, 9}},
	{Name: "Lithuania", Code: "LT", Prefix: 370, PhoneLengths: []int{8}},
	{Name: "Latvia", Code: "LV", Prefix: 371, PhoneLengths: []int{8}},
	{Name: "Estonia", Code: "EE", Prefix: 372, PhoneLengths: []int{7, 8}},
	{Name: "Moldova", Code: "MD", Prefix: 373, PhoneLengths: []int{8}},
	{Name: "Ukraine", Code: "UA", Prefix: 380, PhoneLengths: []int{9}},
	{Name: "Belarus", Code: "BY", Prefix: 375, PhoneLengths: []int{9}},
	{Name: "Russia", Code: "RU", Prefix: 7, PhoneLengths: []int{10}},
	{Name: "Kazakhstan", Code: "KZ", Prefix: 7, PhoneLengths: []int{10}},
	{Name: "Turkey", Code: "TR", Prefix: 90, PhoneLengths: []int{10}},

	// Middle East, Caucasus and Central Asia.
	{Name: "Lebanon", Code: "LB", Prefix: 961, PhoneLengths: []int{7, 8}},
	{Name: "Jordan", Code: "JO", Prefix: 962, PhoneLengths: []int{9}},
	{Name: "Syria", Code: "SY", Prefix: 963, PhoneLengths: []int{9}},
	{Name: "Iraq", Code: "IQ", Prefix: 964, PhoneLengths: []int{10}},
	{Name: "Kuwait", Code: "KW", Prefix: 965, PhoneLengths: []int{8}},
	{Name: "Saudi Arabia", Code: "SA", Prefix: 966, PhoneLengths: []int{9}},
	{Name: "Yemen", Code: "YE", Prefix: 967, PhoneLengths: []int{9}},
	{Name: "Oman", Code: "OM", Prefix: 968, PhoneLengths: []int{8}},
	{Name: "Palestine", Code: "PS", Prefix: 970, PhoneLengths: []int{9}},
	{Name: "United Arab Emirates", Code: "AE", Prefix: 971, PhoneLengths: []int{9}},
	{Name: "Israel", Code: "IL", Prefix: 972, PhoneLengths: []int{9}},
	{Name: "Bahrain", Code: "BH", Prefix: 973, PhoneLengths: []int{8}},
	{Name: "Qatar", Code: "QA", Prefix: 974, PhoneLengths: []int{8}},
	{Name: "Bhutan", Code: "BT", Prefix: 975, PhoneLengths: []int{8}},
	{Name: "Mongolia", Code: "MN", Prefix: 976, PhoneLengths: []int{8}},
	{Name: "Nepal", Code: "NP", Prefix: 977, PhoneLengths: []int{10}},
	{Name: "Iran", Code: "IR", Prefix: 98, PhoneLengths: []int{10}},
	{Name: "Armenia", Code: "AM", Prefix: 374, PhoneLengths: []int{8}},
	{Name: "Azerbaijan", Code: "AZ", Prefix: 994, PhoneLengths: []int{9}},
	{Name: "Georgia", Code: "GE", Prefix: 995, PhoneLengths: []int{9}},
	{Name: "Tajikistan", Code: "TJ", Prefix: 992, PhoneLengths: []int{9}},
	{Name: "Turkmenistan", Code: "TM", Prefix: 993, PhoneLengths: []int{8}},
	{Name: "Kyrgyzstan", Code: "KG", Prefix: 996, PhoneLengths: []int{9}},
	{Name: "Uzbekistan", Code: "UZ", Prefix: 998, PhoneLengths: []int{9}},

	// South Asia.
	{Name: "Afghanistan", Code: "AF", Prefix: 93, PhoneLengths: []int{9}},
	{Name: "Pakistan", Code: "PK", Prefix: 92, PhoneLengths: []int{10}},
	{Name: "India", Code: "IN", Prefix: 91, PhoneLengths: []int{10}},
	{Name: "Sri Lanka", Code: "LK", Prefix: 94, PhoneLengths: []int{9}},
	{Name: "Maldives", Code: "MV", Prefix: 960, PhoneLengths: []int{7}},
	{Name: "Bangladesh", Code: "BD", Prefix: 880, PhoneLengths: []int{10}},
	{Name: "Myanmar", Code: "MM", Prefix: 95, PhoneLengths: []int{9, 10}},

	// East and Southeast Asia.
	{Name: "China", Code: "CN", Prefix: 86, PhoneLengths: []int{11}},
	{Name: "Japan", Code: "JP", Prefix: 81, PhoneLengths: []int{10}},
	{Name: "South Korea", Code: "KR", Prefix: 82, PhoneLengths: []int{9, 10}},
	{Name: "North Korea", Code: "KP", Prefix: 850, PhoneLengths: []int{10}},
	{Name: "Hong Kong", Code: "HK", Prefix: 852, PhoneLengths: []int{8}},
	{Name: "Macau", Code: "MO", Prefix: 853, PhoneLengths: []int{8}},
	{Name: "Taiwan", Code: "TW", Prefix: 886, PhoneLengths: []int{9}},
	{Name: "Singapore", Code: "SG", Prefix: 65, PhoneLengths: []int{8}},
	{Name: "Malaysia", Code: "MY", Prefix: 60, PhoneLengths: []int{9, 10}},
	{Name: "Indonesia", Code: "ID", Prefix: 62, PhoneLengths: []int{9, 10, 11}},
	{Name: "Philippines", Code: "PH", Prefix: 63, PhoneLengths: []int{10}},
	{Name: "Thailand", Code: "TH", Prefix: 66, PhoneLengths: []int{9}},
	{Name: "Vietnam", Code: "VN", Prefix: 84, PhoneLengths: []int{9, 10}},
	{Name: "Cambodia", Code: "KH", Prefix: 855, PhoneLengths: []int{8, 9}},
	{Name: "Laos", Code: "LA", Prefix: 856, PhoneLengths: []int{8, 10}},

	// Oceania.
	{Name: "Australia", Code: "AU", Prefix: 61, PhoneLengths: []int{9, 10}},
	{Name: "New Zealand", Code: "NZ", Prefix: 64, PhoneLengths: []int{8, 9, 10}},
	{Name: "Timor-Leste", Code: "TL", Prefix: 670, PhoneLengths: []int{8}},
	{Name: "Norfolk Island", Code: "NF", Prefix: 672, PhoneLengths: []int{6}},
	{Name: "Brunei", Code: "BN", Prefix: 673, PhoneLengths: []int{7}},
	{Name: "Nauru", Code: "NR", Prefix: 674, PhoneLengths: []int{7}},
	{Name: "Papua New Guinea", Code: "PG", Prefix: 675, PhoneLengths: []int{8}},
	{Name: "Tonga", Code: "TO", Prefix: 676, PhoneLengths: []int{8}},
	{Name: "Solomon Islands", Code: "SB", Prefix: 677, PhoneLengths: []int{5, 7}},
	{Name: "Vanuatu", Code: "VU", Prefix: 678, PhoneLengths: []int{5, 7}},
	{Name: "Fiji", Code: "FJ", Prefix: 679, PhoneLengths: []int{7}},
	{Name: "Palau", Code: "PW", Prefix: 680, PhoneLengths: []int{7}},
	{Name: "Wallis and Futuna", Code: "WF", Prefix: 681, PhoneLengths: []int{6}},
	{Name: "Cook Islands", Code: "CK", Prefix: 682, PhoneLengths: []int{5}},
	{Name: "Kiribati", Code: "KI", Prefix: 686, PhoneLengths: []int{5, 8}},
	{Name: "New Caledonia", Code: "NC", Prefix: 687, PhoneLengths: []int{6}},
	{Name: "Tuvalu", Code: "TV", Prefix: 688, PhoneLengths: []int{6}},
	{Name: "French Polynesia", Code: "PF", Prefix: 689, PhoneLengths: []int{6, 8}},
	{Name: "Tokelau", Code: "TK", Prefix: 690, PhoneLengths: []int{4}},
	{Name: "Micronesia", Code: "FM", Prefix: 691, PhoneLengths: []int{7}},
	{Name: "Marshall Islands", Code: "MH", Prefix: 692, PhoneLengths: []int{7}},

	// Africa.
	{Name: "Egypt", Code: "EG", Prefix: 20, PhoneLengths: []int{10}},
	{Name: "Morocco", Code: "MA", Prefix: 212, PhoneLengths: []int{9}},
	{Name: "Algeria", Code: "DZ", Prefix: 213, PhoneLengths: []int{9}},
	{Name: "Tunisia", Code: "TN", Prefix: 216, PhoneLengths: []int{8}},
	{Name: "Libya", Code: "LY", Prefix: 218, PhoneLengths: []int{9}},
	{Name: "Gambia", Code: "GM", Prefix: 220, PhoneLengths: []int{7}},
	{Name: "Senegal", Code: "SN", Prefix: 221, PhoneLengths: []int{9}},
	{Name: "Mauritania", Code: "MR", Prefix: 222, PhoneLengths: []int{8}},
	{Name: "Mali", Code: "ML", Prefix: 223, PhoneLengths: []int{8}},
	{Name: "Guinea", Code: "GN", Prefix: 224, PhoneLengths: []int{9}},
	{Name: "Ivory Coast", Code: "CI", Prefix: 225, PhoneLengths: []int{8, 10}},
	{Name: "Burkina Faso", Code: "BF", Prefix: 226, PhoneLengths: []int{8}},
	{Name: "Niger", Code: "NE", Prefix: 227, PhoneLengths: []int{8}},
	{Name: "Togo", Code: "TG", Prefix: 228, PhoneLengths: []int{8}},
	{Name: "Benin", Code: "BJ", Prefix: 229, PhoneLengths: []int{8}},
	{Name: "Mauritius", Code: "MU", Prefix: 230, PhoneLengths: []int{7, 8}},
	{Name: "Liberia", Code: "LR", Prefix: 231, PhoneLengths: []int{7, 8}},
	{Name: "Sierra Leone", Code: "SL", Prefix: 232, PhoneLengths: []int{8}},
	{Name: "Ghana", Code: "GH", Prefix: 233, PhoneLengths: []int{9}},
	{Name: "Nigeria", Code: "NG", Prefix: 234, PhoneLengths: []int{9, 10}},
	{Name: "Chad", Code: "TD", Prefix: 235, PhoneLengths: []int{8}},
	{Name: "Central African Republic", Code: "CF", Prefix: 236, PhoneLengths: []int{8}},
	{Name: "Cameroon", Code: "CM", Prefix: 237, PhoneLengths: []int{9}},
	{Name: "Cape Verde", Code: "CV", Prefix: 238, PhoneLengths: []int{7}},
	{Name: "Sao Tome and Principe", Code: "ST", Prefix: 239, PhoneLengths: []int{7}},
	{Name: "Equatorial Guinea", Code: "GQ", Prefix: 240, PhoneLengths: []int{9}},
	{Name: "Gabon", Code: "GA", Prefix: 241, PhoneLengths: []int{7, 8}},
	{Name: "Republic of the Congo", Code: "CG", Prefix: 242, PhoneLengths: []int{9}},
	{Name: "DR Congo", Code: "CD", Prefix: 243, PhoneLengths: []int{9}},
	{Name: "Angola", Code: "AO", Prefix: 244, PhoneLengths: []int{9}},
	{Name: "Guinea-Bissau", Code: "GW", Prefix: 245, PhoneLengths: []int{7, 9}},
	{Name: "British Indian Ocean Territory", Code: "IO", Prefix: 246, PhoneLengths: []int{7}},
	{Name: "Ascension Island", Code: "AC", Prefix: 247, PhoneLengths: []int{4}},
	{Name: "Seychelles", Code: "SC", Prefix: 248, PhoneLengths: []int{7}},
	{Name: "Sudan", Code: "SD", Prefix: 249, PhoneLengths: []int{9}},
	{Name: "Rwanda", Code: "RW", Prefix: 250, PhoneLengths: []int{9}},
	{Name: "Ethiopia", Code: "ET", Prefix: 251, PhoneLengths: []int{9}},
	{Name: "Somalia", Code: "SO", Prefix: 252, PhoneLengths: []int{8, 9}},
	{Name: "Djibouti", Code: "DJ", Prefix: 253, PhoneLengths: []int{8}},
	{Name: "Kenya", Code: "KE", Prefix: 254, PhoneLengths: []int{9}},
	{Name: "Tanzania", Code: "TZ", Prefix: 255, PhoneLengths: []int{9}},
	{Name: "Uganda", Code: "UG", Prefix: 256, PhoneLengths: []int{9}},
	{Name: "Burundi", Code: "BI", Prefix: 257, PhoneLengths: []int{8}},
	{Name: "Mozambique", Code: "MZ", Prefix: 258, PhoneLengths: []int{9}},
	{Name: "Zambia", Code: "ZM", Prefix: 260, PhoneLengths: []int{9}},
	{Name: "Madagascar", Code: "MG", Prefix: 261, PhoneLengths: []int{9}},
	{Name: "Reunion", Code: "RE", Prefix: 262, PhoneLengths: []int{9}},
	{Name: "Zimbabwe", Code: "ZW", Prefix: 263, PhoneLengths: []int{9}},
	{Name: "Namibia", Code: "NA", Prefix: 264, PhoneLengths: []int{9}},
	{Name: "Malawi", Code: "MW", Prefix: 265, PhoneLengths: []int{7, 9}},
	{Name: "Lesotho", Code: "LS", Prefix: 266, PhoneLengths: []int{8}},
	{Name: "Botswana", Code: "BW", Prefix: 267, PhoneLengths: []int{8}},
	{Name: "Eswatini", Code: "SZ", Prefix: 268, PhoneLengths: []int{8}},
	{Name: "Comoros", Code: "KM", Prefix: 269, PhoneLengths: []int{7}},
	{Name: "South Africa", Code: "ZA", Prefix: 27, PhoneLengths: []int{9}},
	{Name: "Saint Helena", Code: "SH", Prefix: 290, PhoneLengths: []int{5}},
	{Name: "Eritrea", Code: "ER", Prefix: 291, PhoneLengths: []int{7}},

	// Latin America and the Caribbean (outside the NANP).
	{Name: "Mexico", Code: "MX", Prefix: 52, PhoneLengths: []int{10}},
	{Name: "Guatemala", Code: "GT", Prefix: 502, PhoneLengths: []int{8}},
	{Name: "Belize", Code: "BZ", Prefix: 501, PhoneLengths: []int{7}},
	{Name: "El Salvador", Code: "SV", Prefix: 503, PhoneLengths: []int{8}},
	{Name: "Honduras", Code: "HN", Prefix: 504, PhoneLengths: []int{8}},
	{Name: "Nicaragua", Code: "NI", Prefix: 505, PhoneLengths: []int{8}},
	{Name: "Costa Rica", Code: "CR", Prefix: 506, PhoneLengths: []int{8}},
	{Name: "Panama", Code: "PA", Prefix: 507, PhoneLengths: []int{8}},
	{Name: "Saint Pierre and Miquelon", Code: "PM", Prefix: 508, PhoneLengths: []int{6, 8}},
	{Name: "Haiti", Code: "HT", Prefix: 509, PhoneLengths: []int{8}},
	{Name: "Falkland Islands", Code: "FK", Prefix: 500, PhoneLengths: []int{5}},
	{Name: "Cuba", Code: "CU", Prefix: 53, PhoneLengths: []int{8}},
	{Name: "Argentina", Code: "AR", Prefix: 54, PhoneLengths: []int{10}},
	{Name: "Brazil", Code: "BR", Prefix: 55, PhoneLengths: []int{10, 11}},
	{Name: "Chile", Code: "CL", Prefix: 56, PhoneLengths: []int{9}},
	{Name: "Colombia", Code: "CO", Prefix: 57, PhoneLengths: []int{10}},
	{Name: "Venezuela", Code: "VE", Prefix: 58, PhoneLengths: []int{10}},
	{Name: "Peru", Code: "PE", Prefix: 51, PhoneLengths: []int{9}},
	{Name: "Guadeloupe", Code: "GP", Prefix: 590, PhoneLengths: []int{9}},
	{Name: "Bolivia", Code: "BO", Prefix: 591, PhoneLengths: []int{8}},
	{Name: "Guyana", Code: "GY", Prefix: 592, PhoneLengths: []int{7}},
	{Name: "Ecuador", Code: "EC", Prefix: 593, PhoneLengths: []int{9}},
	{Name: "French Guiana", Code: "GF", Prefix: 594, PhoneLengths: []int{9}},
	{Name: "Paraguay", Code: "PY", Prefix: 595, PhoneLengths: []int{9}},
	{Name: "Martinique", Code: "MQ", Prefix: 596, PhoneLengths: []int{9}},
	{Name: "Suriname", Code: "SR", Prefix: 597, PhoneLengths: []int{6, 7}},
	{Name: "Uruguay", Code: "UY", Prefix: 598, PhoneLengths: []int{8}},
	{Name: "Curacao", Code: "CW", Prefix: 599, PhoneLengths: []int{7, 8}},
	{Name: "Aruba", Code: "AW", Prefix: 297, PhoneLengths: []int{7}},
}
