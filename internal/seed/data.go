package seed

import "showcase/api/internal/store"

func logo(u string) *string { return &u }

// Tools returns the canonical showcase tools in display order.
func Tools() []store.NewTool {
	return []store.NewTool{
		{Name: "ChatGPT", Category: "Conversational AI / Code / Research", Description: "Multi-domain reasoning (code + logic + writing). Strong contextual memory in single session. Rapid prototyping assistant. Can simulate roles (architect, backend dev, security expert).", UseCase: "Generate full backend architecture with folder structure in minutes.", LogoInitial: "CG", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/0/04/ChatGPT_logo.svg")},
		{Name: "Blackbox AI", Category: "Code Search + Generation", Description: "Extracts code from videos. Searches real code examples fast. Strong for quick snippets.", UseCase: "Find working implementation of rare APIs quickly.", LogoInitial: "BB", LogoURL: logo("https://www.blackbox.ai/images/blackbox-logo.png")},
		{Name: "Gemini CLI", Category: "Terminal AI Assistant", Description: "Works inside terminal. Command-based AI interaction. Developer workflow focused.", UseCase: "Automate tasks from terminal with AI support.", LogoInitial: "Ge", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/8/8a/Google_Gemini_logo.svg")},
		{Name: "Lovable", Category: "AI App Builder", Description: "Converts prompts into full-stack apps. UI + backend scaffolding. Fast prototype builder.", UseCase: "Build SaaS MVP without manual setup.", LogoInitial: "Lv", LogoURL: logo("https://lovable.dev/favicon.ico")},
		{Name: "Figma", Category: "UI/UX Design", Description: "AI-assisted design. Auto layout + component systems. Real-time collaboration.", UseCase: "Generate UI wireframes quickly.", LogoInitial: "Fi", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/3/33/Figma-logo.svg")},
		{Name: "Dora AI", Category: "AI Website Builder", Description: "Text to animated website. No-code motion design. Visual storytelling focused.", UseCase: "Create landing page from prompt.", LogoInitial: "Do", LogoURL: logo("https://www.dora.run/favicon.ico")},
		{Name: "Emergent", Category: "AI-native Development Tool", Description: "AI-generated product systems. Focused on structured building. Designed for AI-assisted workflows.", UseCase: "Generate structured app blueprint.", LogoInitial: "Em", LogoURL: logo("https://emergent.ai/favicon.ico")},
		{Name: "GitHub Copilot", Category: "IDE AI Assistant", Description: "Real-time code suggestions. Context-aware inside IDE. Learns from file context.", UseCase: "Write repetitive logic 2–3x faster.", LogoInitial: "GC", LogoURL: logo("https://github.githubassets.com/images/modules/site/features/copilot/copilot-logo.png")},
		{Name: "Midjourney", Category: "AI Image Generation", Description: "Artistic quality output. Style control. Prompt-based creativity.", UseCase: "Generate branding visuals instantly.", LogoInitial: "Mj", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/e/e6/Midjourney_Emblem.svg")},
		{Name: "Notion AI", Category: "Productivity AI", Description: "Integrated inside workspace. Notes summarization. Task automation.", UseCase: "Convert meeting notes to action plan.", LogoInitial: "No", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/e/e9/Notion-logo.svg")},
		{Name: "Claude", Category: "Long-context AI", Description: "Handles very large documents. Strong reasoning tone. Safer output style.", UseCase: "Analyze large technical documentation.", LogoInitial: "Cl", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/d/d3/Claude_AI_logo.svg")},
		{Name: "Perplexity", Category: "AI Research Engine", Description: "Real-time web citations. Research-focused answers. Source linking.", UseCase: "Fast academic research summary.", LogoInitial: "Px", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/e/e0/Perplexity_AI_logo.svg")},
		{Name: "Cursor AI", Category: "AI Code Editor", Description: "Codebase-aware AI. Can edit entire files. Understands project context.", UseCase: "Refactor large project with AI.", LogoInitial: "Cu", LogoURL: logo("https://mintlify.s3-us-west-1.amazonaws.com/cursor/logo/light.png")},
		{Name: "Vercel AI", Category: "AI Deployment & SDK", Description: "AI SDK for building AI apps. Fast deployment. Optimized for Next.js.", UseCase: "Deploy AI-powered web apps easily.", LogoInitial: "Ve", LogoURL: logo("https://assets.vercel.com/image/upload/front/favicon/vercel/180x180.png")},
		{Name: "Hugging Face", Category: "AI Model Hub", Description: "Open-source model hosting. Transformers library. Community datasets.", UseCase: "Access pre-trained models.", LogoInitial: "HF", LogoURL: logo("https://huggingface.co/front/assets/huggingface_logo-noborder.svg")},
		{Name: "Runway ML", Category: "AI Video Generation", Description: "Text-to-video. Background removal. Video editing AI.", UseCase: "Create AI-generated promotional videos.", LogoInitial: "Rw", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/5/52/Runway_ML_Logo.svg")},
		{Name: "Canva AI", Category: "AI Design Platform", Description: "AI presentation generator. Text-to-image. Auto layout.", UseCase: "Create presentations in minutes.", LogoInitial: "Ca", LogoURL: logo("https://upload.wikimedia.org/wikipedia/commons/0/0e/Canva_logo.svg")},
	}
}

// IndustrySectors returns the canonical sectors in display order.
func IndustrySectors() []store.NewIndustrySector {
	return []store.NewIndustrySector{
		{Title: "Healthcare", UseCases: []string{"Drug Discovery", "Personalized Treatment", "Medical Imaging Analysis"}},
		{Title: "Finance", UseCases: []string{"Fraud Detection", "Algorithmic Trading", "Risk Assessment"}},
		{Title: "Manufacturing", UseCases: []string{"Predictive Maintenance", "Quality Control", "Supply Chain Optimization"}},
		{Title: "Education", UseCases: []string{"Personalized Tutors", "Automated Grading", "Content Generation"}},
		{Title: "Cybersecurity", UseCases: []string{"Threat Detection", "Phishing Prevention", "Automated Response"}},
		{Title: "Agriculture", UseCases: []string{"Crop Monitoring", "Yield Prediction", "Precision Farming"}},
	}
}
