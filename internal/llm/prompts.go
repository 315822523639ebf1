// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const systemPrompt = `You are an expert in academic paper analysis with deep knowledge across scientific fields. Your role is to analyze research papers and extract structured information.

Guidelines:
- Be concise and accurate
- Focus on the main contributions and what is novel
- Use technical terminology appropriately
- Stay objective
- When the abstract does not contain a piece of information, say "Not stated in the abstract"`

const translationSystemPrompt = `You are a professional translator of English academic papers into Japanese. Preserve the accuracy of technical terms and the academic tone.`

// paperPrompt is the data for every per-paper template.
type paperPrompt struct {
	Title    string
	Abstract string
	Keywords string
}

var summaryTmpl = template.Must(template.New("summary").Parse(`Analyze this academic paper and write a concise summary (2-3 paragraphs).

Title: {{.Title}}

Abstract: {{.Abstract}}

Focus on:
1. The main problem or research question addressed
2. The proposed solution, method or approach
3. The key findings and contributions

Provide a clear, structured summary that captures the essence of the paper.`))

var methodologyTmpl = template.Must(template.New("methodology").Parse(`Extract and describe the methodology of this paper.

Title: {{.Title}}

Abstract: {{.Abstract}}

Describe:
1. The research approach (experimental, theoretical, empirical, ...)
2. The main methods and techniques used
3. The evaluation methodology and metrics
4. Any novel methodological contribution

If the abstract gives few methodological details, describe what can reasonably be inferred.`))

var analysisTmpl = template.Must(template.New("analysis").Parse(`Analyze this academic paper comprehensively and provide a structured analysis.

Title: {{.Title}}

Abstract: {{.Abstract}}

Respond with a JSON object of this shape:
{
    "summary": "2-3 paragraph summary of the paper",
    "background_and_purpose": "background, motivation and goal of the research",
    "methodology": "technical approach, methods and techniques used",
    "datasets": [
        {
            "name": "dataset name (e.g. ImageNet, COCO, SQuAD)",
            "url": "URL where the dataset is available, or empty",
            "paper_title": "title of the paper that introduced the dataset, or empty",
            "paper_url": "URL of that paper, or empty",
            "paper_authors": "authors of that paper, or empty",
            "description": "short description of the dataset, or empty",
            "domain": "field (e.g. Computer Vision, NLP, Speech)",
            "size": "size information (e.g. 1.2M images), or empty"
        }
    ],
    "results": "main findings and experimental results",
    "advantages_limitations_and_future_work": "strengths, weaknesses and future directions",
    "key_contributions": ["contribution 1", "contribution 2"],
    "tasks": ["research area 1", "research area 2"]
}

"datasets" lists every dataset used in the paper; return an empty array [] when none are used or mentioned.
Fill in every field. Where the abstract is silent, make a reasonable inference or write "Not stated".`))

var translationTmpl = template.Must(template.New("translation").Parse(`Translate the following academic text into {{.Language}}.

Requirements:
- Keep technical terms accurate
- Preserve the academic tone and style
- Keep the same paragraph structure

Text to translate:
{{.Text}}

Reply with the translation only, without explanations.`))

var keywordsTmpl = template.Must(template.New("keywords").Parse(`Extract keywords, topics and technical terms from the following academic paper.

Title: {{.Title}}

Abstract: {{.Abstract}}

Respond with a JSON object of this shape:
{
    "keywords": ["keyword 1", "keyword 2"],
    "topics": ["research topic 1", "research topic 2"],
    "technical_terms": [
        {"term": "technical term 1", "definition": "short definition"}
    ],
    "methods": ["method 1", "method 2"],
    "datasets": ["dataset 1", "dataset 2"]
}

Guidelines:
- keywords: the paper's main search keywords (5-10)
- topics: research fields and topics (3-5)
- technical_terms: important technical terms with definitions (about 5)
- methods: every method or technique used
- datasets: every dataset mentioned, or an empty array`))

var contextTmpl = template.Must(template.New("context").Parse(`Analyze where the following academic paper sits within its research field.

Title: {{.Title}}

Abstract: {{.Abstract}}

Keywords: {{.Keywords}}

Respond with a JSON object of this shape:
{
    "primary_field": "primary research field",
    "sub_fields": ["sub-field 1", "sub-field 2"],
    "research_type": "one of: empirical, theoretical, survey, methodology, application",
    "positioning": "2-3 sentences on how this work fits into its field",
    "related_directions": ["related direction 1", "related direction 2"]
}

Guidelines:
- primary_field: the most relevant research field
- sub_fields: more specific sub-fields (2-4)
- research_type: exactly one of empirical, theoretical, survey, methodology, application
- positioning: what the work contributes and which problem it addresses
- related_directions: research directions this work could lead to (3-5)`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func paperData(title, abstract string, keywords []string) paperPrompt {
	return paperPrompt{Title: title, Abstract: abstract, Keywords: strings.Join(keywords, ", ")}
}
