// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

// AcademicDomains is the allow-list passed to providers that support domain
// filtering (Tavily, Exa). It biases results toward scholarly publishers and
// aggregators; directory providers (DOAJ) are scholarly by construction and
// ignore it.
var AcademicDomains = []string{
	"pubmed.ncbi.nlm.nih.gov",
	"sciencedirect.com",
	"springer.com",
	"elsevier.com",
	"wiley.com",
	"ieee.org",
	"acm.org",
	"mdpi.com",
	"nature.com",
	"science.org",
	"frontiersin.org",
	"plos.org",
	"bmj.com",
	"jamanetwork.com",
	"nejm.org",
	"arxiv.org",
	"biorxiv.org",
	"jstor.org",
	"cambridge.org",
	"oup.com",
	"tandfonline.com",
	"researchgate.net",
	"academia.edu",
	"doaj.org",
}
