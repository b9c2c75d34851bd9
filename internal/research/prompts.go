package research

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompts holds the instruction blocks used by each research operation.
// Defaults are compiled in; individual blocks can be overridden from a
// yaml file via RESEARCH_PROMPTS_PATH.
type Prompts struct {
	SearchUnions   string `yaml:"search_unions"`
	DeepSearch     string `yaml:"deep_search"`
	GenerateLeads  string `yaml:"generate_leads"`
	GenerateReport string `yaml:"generate_report"`
	ParseUnions    string `yaml:"parse_unions"`
}

// DefaultPrompts returns the built-in instruction blocks
func DefaultPrompts() Prompts {
	return Prompts{
		SearchUnions:   defaultSearchUnionsPrompt,
		DeepSearch:     defaultDeepSearchPrompt,
		GenerateLeads:  defaultGenerateLeadsPrompt,
		GenerateReport: defaultGenerateReportPrompt,
		ParseUnions:    defaultParseUnionsPrompt,
	}
}

// LoadOverrides merges prompt blocks from a yaml file over the defaults.
// Blocks absent from the file keep their default value.
func (p *Prompts) LoadOverrides(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read prompt overrides %s: %w", path, err)
	}

	var overrides Prompts
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return fmt.Errorf("failed to parse prompt overrides %s: %w", path, err)
	}

	if s := strings.TrimSpace(overrides.SearchUnions); s != "" {
		p.SearchUnions = s
	}
	if s := strings.TrimSpace(overrides.DeepSearch); s != "" {
		p.DeepSearch = s
	}
	if s := strings.TrimSpace(overrides.GenerateLeads); s != "" {
		p.GenerateLeads = s
	}
	if s := strings.TrimSpace(overrides.GenerateReport); s != "" {
		p.GenerateReport = s
	}
	if s := strings.TrimSpace(overrides.ParseUnions); s != "" {
		p.ParseUnions = s
	}

	return nil
}

const defaultSearchUnionsPrompt = `Search for labor unions in %s, %s. Focus on finding:
- Union names and official websites
- Contact information (phone numbers, email addresses)
- Physical addresses
- Union type/industry they represent
- Membership information if available

Please provide a structured list of unions with their contact details.`

const defaultDeepSearchPrompt = `Perform a comprehensive search for detailed information about "%s" union. Find:

CONTACT INFORMATION:
- Main office phone numbers
- Email addresses (general, leadership, membership)
- Physical addresses of offices/headquarters
- Fax numbers if available

LEADERSHIP & REPRESENTATIVES:
- Union president/leader names
- Executive board members
- Local representatives
- Contact information for key personnel
- Email of the representatives

DIGITAL PRESENCE:
- Official website
- Social media accounts (Facebook, Twitter, LinkedIn, Instagram)
- YouTube channels
- Newsletter/blog links

ORGANIZATIONAL DETAILS:
- Union local numbers
- Affiliated national/international unions
- Industries/sectors represented
- Membership size if available

Please provide detailed, accurate, and up-to-date information with sources.`

const defaultGenerateLeadsPrompt = `Each lead should be an object with the following properties, focusing on current employees, key personnel, or affiliated companies:
- first_name: string (optional, but try to find)
- last_name: string (required if individual, or best guess if company person)
- company_name: string (required, should be related to the union or be the union itself)
- email_address: string (optional, high priority to find)
- phone_number: string (optional, high priority to find)
- job_title: string (optional, e.g., "President", "Organizer", "HR Manager")
- website_url: string (optional, company or union website)
- industry: string (optional, derived from union's industry if not specific to lead)
- notes: string (optional, any relevant details)
- street: string (optional, related to the company/union address)
- city: string (optional)
- state: string (optional)
- zip_code: string (optional)
- country: string (required)
- annual_revenue: numeric (optional, estimate if possible)
- no_of_employees: integer (optional, estimate if possible)

Generate at least 10 high-quality leads, up to a maximum of 20, as a JSON array. The 'last_name' and 'company_name' fields are required. If a specific individual's first_name and last_name aren't available, focus on high-level contacts for the company.
Return ONLY the JSON array with no additional text or formatting.`

const defaultGenerateReportPrompt = `The report should cover the following sections:

## 1. Overview and Mission
- What is the union's primary purpose and mission?
- What industries or types of workers does it represent?
- What are its core values or guiding principles?

## 2. Key Activities and Services
- What are its main activities (e.g., collective bargaining, advocacy, training, member services)?
- What specific services does it provide to its members?
- Any notable campaigns, strikes, or achievements?

## 3. Contact Information
- Official Website (if available)
- Primary Phone Number (if available)
- Email Address (if available)
- Main Physical Address (street, city, state, zip, country)

## 4. Membership and Structure (if publicly available)
- Approximate number of members or membership demographics.
- Information about its leadership or organizational structure.
- Any affiliations with larger national or international labor organizations.

## 5. Recent News and Initiatives
- Highlight any significant recent news, projects, or initiatives.
- Mention current challenges or focuses.

## 6. Leadership and Representatives
- Union president/leader names
- Executive board members
- Local representatives
- Contact information for key personnel

Ensure the report is well-structured, easy to read, and uses Markdown headings, bullet points, and bold text where appropriate. Provide "N/A" if information is not found.`

const defaultParseUnionsPrompt = `Parse the following markdown text containing union information and extract structured data for each union.

Extract the following fields for each union:
- name: The full name of the union
- website: The website URL (without markdown formatting)
- email: Email address (without markdown formatting)
- phone: Phone number
- address: Physical address
- union_type: Type of union (e.g., "Electrical Workers", "Steelworkers", etc.)
- local_number: Local union number if mentioned (e.g., "Local 119", "Local 52")
- membership_info: Any membership statistics or information

Return ONLY a JSON object of the form {"unions": [ ... ]} with no additional text or formatting.`
