package services

import "github.com/lexislabs/lexis-cli/internal/core/domain"

// NewDefaultCatalog builds the curated institution catalog. It is the
// always-available fallback when live scraping fails or returns
// incomplete data, trading coverage for reliability.
func NewDefaultCatalog() *domain.InstitutionCatalog {
	return domain.NewInstitutionCatalog([]domain.InstitutionRecord{
		{
			Name:        "Indian Institute of Technology Bombay",
			Founder:     "Dr. Bhabha",
			FoundedYear: "1958",
			Branches:    []string{"Mumbai"},
			Employees:   "5000+",
			Summary: "The Indian Institute of Technology Bombay (IIT Bombay) is one of India's most prestigious engineering and research institutions, established in 1958. " +
				"Located in Powai, Mumbai, its sprawling campus is a hub of academic excellence and innovation. IIT Bombay is consistently ranked among the top technical universities " +
				"in India and globally, attracting brilliant minds from across the country. It offers a wide array of undergraduate, postgraduate, and doctoral programs in engineering, " +
				"science, humanities, and management.",
		},
		{
			Name:        "Indian Institute of Science",
			Founder:     "Jamsetji Tata",
			FoundedYear: "1909",
			Branches:    []string{"Bengaluru"},
			Employees:   "3000+",
			Summary: "The Indian Institute of Science (IISc), located in Bengaluru, is India's premier institution for advanced scientific and technological research and education. " +
				"It was established in 1909 with the visionary support of Jamsetji Tata and the then Maharaja of Mysore, becoming a cornerstone of India's scientific progress. " +
				"IISc is internationally recognized for its rigorous academic programs, pioneering research, and significant contributions to fundamental and applied sciences. " +
				"The institute offers a wide range of master's and doctoral programs in various disciplines.",
		},
		{
			Name:        "All India Institute of Medical Sciences, Delhi",
			Founder:     "Government of India",
			FoundedYear: "1956",
			Branches:    []string{"New Delhi"},
			Employees:   "10000+",
			Summary: "The All India Institute of Medical Sciences, New Delhi (AIIMS Delhi) stands as India's leading medical institution, established in 1956 by the Government of India. " +
				"It operates as a public medical research university and hospital, setting national benchmarks for medical education, research, and patient care. " +
				"AIIMS Delhi is consistently ranked as the top medical college in the country, renowned for its highly specialized clinical services and advanced research facilities. " +
				"It offers comprehensive undergraduate and postgraduate medical and paramedical courses.",
		},
		{
			Name:        "Jawaharlal Nehru University",
			Founder:     "Government of India",
			FoundedYear: "1969",
			Branches:    []string{"New Delhi"},
			Employees:   "1200+",
			Summary: "Jawaharlal Nehru University (JNU) is a public central university located in New Delhi, India. " +
				"It was established in 1969 and is known for its liberal arts and social science programs. " +
				"JNU is one of the leading universities in India, recognized for its research in various fields. " +
				"It attracts students and faculty from across the globe.",
		},
		{
			Name:        "Stanford University",
			Founder:     "Leland Stanford, Jane Stanford",
			FoundedYear: "1885",
			Branches:    []string{"Stanford, California"},
			Employees:   "20000+",
			Summary: "Stanford University, officially Leland Stanford Junior University, is a private research university in Stanford, California. " +
				"It was founded in 1885 by Leland and Jane Stanford in memory of their son, Leland Stanford Jr. " +
				"The university is known for its academic excellence, research, and proximity to Silicon Valley, fostering innovation and entrepreneurship. " +
				"It offers programs in a wide range of disciplines.",
		},
		{
			Name:        "Massachusetts Institute of Technology",
			Founder:     "William Barton Rogers",
			FoundedYear: "1861",
			Branches:    []string{"Cambridge, Massachusetts"},
			Employees:   "12000+",
			Summary: "The Massachusetts Institute of Technology (MIT) is a private land-grant research university in Cambridge, Massachusetts. " +
				"Established in 1861, MIT is known for its cutting-edge research and education in science, engineering, and technology. " +
				"It has played a key role in the development of modern technology and scientific advancements. " +
				"MIT consistently ranks among the world's top universities.",
		},
	})
}
