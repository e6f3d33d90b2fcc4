// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/md2pptx/pkg/types"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	relBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"

	ctBase = "application/vnd.openxmlformats-officedocument.presentationml."

	// masterID is the slide master id; layout ids follow it.
	masterID = 2147483648
	// firstSlideID is the lowest id PowerPoint assigns to slides.
	firstSlideID = 256
)

// pmlRoot opens a PresentationML root element with the usual namespaces.
func pmlRoot(name, attrs string) string {
	return fmt.Sprintf(`%s<p:%s xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"%s>`, xmlHeader, name, nsA, nsR, nsP, attrs)
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer does; bytes.Buffer never does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func contentTypesXML(layouts, slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)

	override := func(part, ct string) {
		fmt.Fprintf(&b, `<Override PartName="%s" ContentType="%s"/>`, part, ct)
	}
	override("/ppt/presentation.xml", ctBase+"presentation.main+xml")
	override("/ppt/slideMasters/slideMaster1.xml", ctBase+"slideMaster+xml")
	for i := 1; i <= layouts; i++ {
		override(fmt.Sprintf("/ppt/slideLayouts/slideLayout%d.xml", i), ctBase+"slideLayout+xml")
	}
	for i := 1; i <= slides; i++ {
		override(fmt.Sprintf("/ppt/slides/slide%d.xml", i), ctBase+"slide+xml")
	}
	override("/ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	override("/ppt/presProps.xml", ctBase+"presProps+xml")
	override("/ppt/viewProps.xml", ctBase+"viewProps+xml")
	override("/ppt/tableStyles.xml", ctBase+"tableStyles+xml")
	override("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	override("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")
	b.WriteString(`</Types>`)
	return b.String()
}

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="` + relBase + `officeDocument" Target="ppt/presentation.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="` + relBase + `extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

// relationships renders a relationships part from (type, target) pairs,
// numbering ids from rId1.
func relationships(rels [][2]string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s%s" Target="%s"/>`, i+1, relBase, r[0], r[1])
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func coreXML(m types.DeckMetadata, created, modified time.Time) string {
	const stamp = "2006-01-02T15:04:05Z"
	creator := m.Author
	if creator == "" {
		creator = application
	}

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escape(m.Title))
	fmt.Fprintf(&b, `<dc:subject>%s</dc:subject>`, escape(m.Subject))
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, escape(creator))
	fmt.Fprintf(&b, `<cp:keywords>%s</cp:keywords>`, escape(strings.Join(m.Keywords, ", ")))
	fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, application)
	b.WriteString(`<cp:revision>1</cp:revision>`)
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, created.Format(stamp))
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, modified.Format(stamp))
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

func appXML(slides int) string {
	return fmt.Sprintf(xmlHeader+
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"`+
		` xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`+
		`<TotalTime>0</TotalTime><Application>%s</Application>`+
		`<PresentationFormat>On-screen Show (4:3)</PresentationFormat>`+
		`<Slides>%d</Slides><Notes>0</Notes><HiddenSlides>0</HiddenSlides>`+
		`</Properties>`, application, slides)
}

func presentationXML(slides int) string {
	var b strings.Builder
	b.WriteString(pmlRoot("presentation", ` saveSubsetFonts="1"`))
	fmt.Fprintf(&b, `<p:sldMasterIdLst><p:sldMasterId id="%d" r:id="rId1"/></p:sldMasterIdLst>`, masterID)
	if slides > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := 0; i < slides; i++ {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, firstSlideID+i, presentationSlideRelOffset+i+1)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d" type="screen4x3"/>`, slideWidth, slideHeight)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, slideHeight, slideWidth)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

// presentationSlideRelOffset is the number of non-slide relationships in
// presentation.xml.rels; slide relationships come after them.
const presentationSlideRelOffset = 5

func presentationRelsXML(slides int) string {
	rels := [][2]string{
		{"slideMaster", "slideMasters/slideMaster1.xml"},
		{"presProps", "presProps.xml"},
		{"viewProps", "viewProps.xml"},
		{"theme", "theme/theme1.xml"},
		{"tableStyles", "tableStyles.xml"},
	}
	for i := 1; i <= slides; i++ {
		rels = append(rels, [2]string{"slide", fmt.Sprintf("slides/slide%d.xml", i)})
	}
	return relationships(rels)
}

var (
	presPropsXML   = pmlRoot("presentationPr", "") + `</p:presentationPr>`
	viewPropsXML   = pmlRoot("viewPr", "") + `<p:gridSpacing cx="76200" cy="76200"/></p:viewPr>`
	tableStylesXML = xmlHeader + `<a:tblStyleLst xmlns:a="` + nsA + `" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`
)

const groupShapeHeader = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
	`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

// writeShape renders a placeholder shape. Master and layout shapes carry
// explicit geometry; slide shapes inherit it from their layout.
func writeShape(b *strings.Builder, id int, name string, ph Placeholder, geometry bool, paras []*Paragraph) {
	b.WriteString(`<p:sp><p:nvSpPr>`)
	fmt.Fprintf(b, `<p:cNvPr id="%d" name="%s"/>`, id, escape(name))
	b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph`)
	if ph.Type != PlaceholderObject {
		fmt.Fprintf(b, ` type="%s"`, ph.Type)
	}
	if ph.Idx != 0 {
		fmt.Fprintf(b, ` idx="%d"`, ph.Idx)
	}
	b.WriteString(`/></p:nvPr></p:nvSpPr>`)

	if geometry {
		fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm></p:spPr>`,
			ph.frame.X, ph.frame.Y, ph.frame.CX, ph.frame.CY)
	} else {
		b.WriteString(`<p:spPr/>`)
	}

	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
	for _, p := range paras {
		writeParagraph(b, p)
	}
	b.WriteString(`</p:txBody></p:sp>`)
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	b.WriteString(`<a:p>`)
	if p.Level > 0 {
		fmt.Fprintf(b, `<a:pPr lvl="%d"/>`, p.Level)
	}
	if p.Text == "" {
		b.WriteString(`<a:endParaRPr lang="en-US" dirty="0"/>`)
	} else {
		fmt.Fprintf(b, `<a:r><a:rPr lang="en-US" dirty="0"/><a:t>%s</a:t></a:r>`, escape(p.Text))
	}
	b.WriteString(`</a:p>`)
}

// promptParagraphs returns the prompt text shown in an empty placeholder.
func promptParagraphs(ph Placeholder) []*Paragraph {
	paras := []*Paragraph{{Text: ph.prompt}}
	if ph.prompt == bodyPrompt {
		paras = append(paras, &Paragraph{Text: "Second level", Level: 1})
	}
	return paras
}

func writeTemplateShapes(b *strings.Builder, phs []Placeholder) {
	b.WriteString(groupShapeHeader)
	for i, ph := range phs {
		id := i + 2
		writeShape(b, id, fmt.Sprintf("%s %d", ph.Name, id-1), ph, true, promptParagraphs(ph))
	}
}

const masterTextStyles = `<p:txStyles>` +
	`<p:titleStyle><a:lvl1pPr algn="ctr" rtl="0"><a:spcBef><a:spcPct val="0"/></a:spcBef><a:buNone/>` +
	`<a:defRPr sz="4400" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
	`<a:latin typeface="+mj-lt"/><a:ea typeface="+mj-ea"/><a:cs typeface="+mj-cs"/></a:defRPr></a:lvl1pPr></p:titleStyle>` +
	`<p:bodyStyle>` +
	`<a:lvl1pPr marL="342900" indent="-342900" algn="l" rtl="0"><a:spcBef><a:spcPct val="20000"/></a:spcBef>` +
	`<a:buFont typeface="Arial"/><a:buChar char="&#8226;"/>` +
	`<a:defRPr sz="3200" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
	`<a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr>` +
	`<a:lvl2pPr marL="742950" indent="-285750" algn="l" rtl="0"><a:spcBef><a:spcPct val="20000"/></a:spcBef>` +
	`<a:buFont typeface="Arial"/><a:buChar char="&#8211;"/>` +
	`<a:defRPr sz="2800" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
	`<a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl2pPr>` +
	`</p:bodyStyle>` +
	`<p:otherStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:otherStyle>` +
	`</p:txStyles>`

func slideMasterXML(layouts int) string {
	var b strings.Builder
	b.WriteString(pmlRoot("sldMaster", ""))
	b.WriteString(`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>`)
	writeTemplateShapes(&b, masterPlaceholders())
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2"` +
		` accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`)
	b.WriteString(`<p:sldLayoutIdLst>`)
	for i := 1; i <= layouts; i++ {
		fmt.Fprintf(&b, `<p:sldLayoutId id="%d" r:id="rId%d"/>`, masterID+i, i)
	}
	b.WriteString(`</p:sldLayoutIdLst>`)
	b.WriteString(masterTextStyles)
	b.WriteString(`</p:sldMaster>`)
	return b.String()
}

func slideMasterRelsXML(layouts int) string {
	rels := make([][2]string, 0, layouts+1)
	for i := 1; i <= layouts; i++ {
		rels = append(rels, [2]string{"slideLayout", fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i)})
	}
	rels = append(rels, [2]string{"theme", "../theme/theme1.xml"})
	return relationships(rels)
}

func slideLayoutXML(l Layout) string {
	var b strings.Builder
	b.WriteString(pmlRoot("sldLayout", fmt.Sprintf(` type="%s" preserve="1"`, l.kind)))
	fmt.Fprintf(&b, `<p:cSld name="%s"><p:spTree>`, escape(l.Name))
	writeTemplateShapes(&b, l.Placeholders)
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`)
	return b.String()
}

var slideLayoutRelsXML = relationships([][2]string{{"slideMaster", "../slideMasters/slideMaster1.xml"}})

func slideXML(s *Slide) string {
	var b strings.Builder
	b.WriteString(pmlRoot("sld", ""))
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(groupShapeHeader)
	for _, sh := range s.shapes {
		writeShape(&b, sh.id, sh.name, sh.ph, false, sh.text.paragraphs)
	}
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

func slideRelsXML(layoutNumber int) string {
	return relationships([][2]string{{"slideLayout", fmt.Sprintf("../slideLayouts/slideLayout%d.xml", layoutNumber)}})
}
