package passagegen

import "math/rand/v2"

// SampleTopics is the built-in topic pool used when the caller does not
// supply one, and for filling out batches.
var SampleTopics = []Topic{
	{Topic: "AI and Cultural Memory", Domain: "science/philosophy"},
	{Topic: "Quiet Revolutions in the City: Small Designs for Urban Heat", Domain: "urban design / climate"},
	{Topic: "The Hidden Language of Mycelial Networks", Domain: "biology / ecology"},
	{Topic: "Forgotten Empires: Trade Routes Before the Silk Road", Domain: "history / archaeology"},
	{Topic: "Quantum Computing and the Future of Cryptography", Domain: "technology / security"},
	{Topic: "The Psychology of Decision Fatigue in Modern Life", Domain: "psychology / neuroscience"},
	{Topic: "Ocean Acidification and Marine Ecosystems", Domain: "environmental science / marine biology"},
	{Topic: "The Evolution of Human Language and Cognition", Domain: "linguistics / anthropology"},
	{Topic: "Renewable Energy Storage: Beyond Lithium Batteries", Domain: "engineering / sustainability"},
	{Topic: "The Impact of Social Media on Democratic Discourse", Domain: "sociology / political science"},
	{Topic: "Neuroplasticity and Learning in Adult Brains", Domain: "neuroscience / education"},
	{Topic: "Ancient Architectural Engineering Marvels", Domain: "history / engineering"},
	{Topic: "The Microbiome and Human Health", Domain: "biology / medicine"},
	{Topic: "Space Debris and Orbital Sustainability", Domain: "aerospace / environmental science"},
	{Topic: "The Philosophy of Artificial Consciousness", Domain: "philosophy / AI ethics"},
	{Topic: "Climate Migration and Urban Planning", Domain: "geography / urban studies"},
	{Topic: "The Economics of Attention in Digital Markets", Domain: "economics / technology"},
	{Topic: "Bioacoustics: How Animals Communicate Through Sound", Domain: "zoology / acoustics"},
	{Topic: "The Science of Sleep and Memory Consolidation", Domain: "neuroscience / psychology"},
	{Topic: "Carbon Capture Technology and Climate Solutions", Domain: "environmental engineering / climate science"},
}

// RandomTopic picks a topic from the sample pool.
func RandomTopic() Topic {
	return SampleTopics[rand.IntN(len(SampleTopics))]
}
