package catalog

// Stop codes, grouped by the line that first serves them. Resolution tries
// them in this order.
const (
	UnknownStop StopCode = iota
	// Airport line
	AirportTerminalEF
	AirportTerminalCD
	AirportTerminalB
	AirportTerminalA
	Eastwick

	// Chestnut Hill East line
	Stenton
	Wyndmoor
	Wister
	Gravers
	Germantown
	Sedgwick
	ChestnutHillEast
	WashingtonLane
	MountAiry

	// Chestnut Hill West line
	NorthPhiladelphia
	Upsal
	StMartins
	ChestnutHillWest
	CheltenAvenue
	Carpenter
	RichardAllenLane
	Tulpehocken
	Highland
	QueenLane

	// Cynwyd line
	Cynwyd
	Bala
	WynnefieldAvenue

	// Fox Chase line
	FoxChase
	Ryers
	Cheltenham
	Lawndale
	Olney

	// Lansdale/Doylestown line
	Doylestown
	DelawareValleyCollege
	NewBritain
	Chalfont
	LinkBelt
	Colmar
	Fortuna
	NinthStreetLansdale
	Lansdale
	Pennbrook
	NorthWales
	GwyneddValley
	Penllyn
	Ambler
	FortWashington
	Oreland
	NorthHills
	NorthBroad

	// Media/Wawa line
	Wawa
	Elwyn
	Media
	MoylanRoseValley
	Wallingford
	Swarthmore
	Morton
	Secane
	Primos
	CliftonAldan
	Gladstone
	Lansdowne
	FernwoodYeadon
	Angora
	FortyNinthStreet

	// Manayunk/Norristown line
	NorristownElmStreet
	MainStreet
	NorristownTC
	Conshohocken
	SpringMill
	Miquon
	IvyRidge
	Manayunk
	Wissahickon
	EastFalls
	Allegheny

	// Paoli/Thorndale line
	Thorndale
	Downingtown
	Whitford
	Exton
	Malvern
	Paoli
	Wayne
	StDavids
	Berwyn
	Devon
	Villanova
	Rosemont
	BrynMawr
	Strafford
	Daylesford
	Radnor
	Haverford
	Ardmore
	Wynnewood
	Narberth
	Overbrook
	Merion

	// Trenton line
	Trenton
	Levittown
	Bristol
	Croydon
	Eddington
	CornwellsHeights
	Torresdale
	HolmesburgJct
	Tacony
	Bridesburg
	NorthPhiladelphiaAmtrak

	// Warminster line
	Warminster
	Hatboro
	WillowGrove
	Crestmont
	Roslyn
	Ardsley

	// Wilmington/Newark line
	Newark
	ChurchmansCrossing
	Wilmington
	Claymont
	MarcusHook
	HighlandAvenue
	Chester
	Eddystone
	CrumLynne
	RidleyPark
	ProspectParkMoore
	Norwood
	Glenolden
	Folcroft
	SharonHill
	CurtisPark
	Darby

	// West Trenton line
	WestTrenton
	Yardley
	Woodbourne
	Langhorne
	Neshaminy
	Trevose
	Somerton
	ForestHills
	Philmont
	Bethayres
	Meadowbrook
	Rydal
	Noble

	// Shared
	WayneJunction
	Glenside
	JenkintownWyncote
	FernRockTC
	ElkinsPark
	MelrosePark

	// Shared Center City
	Gray30thStreet
	SuburbanStation
	JeffersonStation
	TempleUniversity
	PennMedicineStation

	stopCodeCount
)

// stopTable holds the catalog data for every recognized stop. The first name
// is the canonical display form; the rest are spellings seen in the feed.
var stopTable = [stopCodeCount]stopInfo{
	// Airport line
	AirportTerminalEF: {90401, Coordinate{39.8794444, -75.2397222}, []string{"Airport Terminal E F", "Airport Terminal E-F"}},
	AirportTerminalCD: {90402, Coordinate{39.8780556, -75.2400000}, []string{"Airport Terminal C D", "Airport Terminal C-D"}},
	AirportTerminalB:  {90403, Coordinate{39.8772222, -75.2413889}, []string{"Airport Terminal B"}},
	AirportTerminalA:  {90404, Coordinate{39.8761111, -75.2452778}, []string{"Airport Terminal A"}},
	Eastwick:          {90405, Coordinate{39.8927778, -75.2438889}, []string{"Eastwick"}},

	// Chestnut Hill East line
	Stenton:          {90715, Coordinate{40.0605556, -75.1786111}, []string{"Stenton"}},
	Wyndmoor:         {90718, Coordinate{40.0733333, -75.1966667}, []string{"Wyndmoor"}},
	Wister:           {90712, Coordinate{40.0361111, -75.1611111}, []string{"Wister"}},
	Gravers:          {90719, Coordinate{40.0775000, -75.2016667}, []string{"Gravers"}},
	Germantown:       {90713, Coordinate{40.0375000, -75.1716667}, []string{"Germantown"}},
	Sedgwick:         {90716, Coordinate{40.0627778, -75.1852778}, []string{"Sedgwick"}},
	ChestnutHillEast: {90720, Coordinate{40.0811111, -75.2072222}, []string{"Chestnut Hill East", "Chestnut H East"}},
	WashingtonLane:   {90714, Coordinate{40.0508333, -75.1713889}, []string{"Washington Lane"}},
	MountAiry:        {90717, Coordinate{40.0652778, -75.1908333}, []string{"Mount Airy"}},

	// Chestnut Hill West line
	NorthPhiladelphia: {90810, Coordinate{39.9977778, -75.1563889}, []string{"North Philadelphia"}},
	Upsal:             {90806, Coordinate{40.0425000, -75.1900000}, []string{"Upsal"}},
	StMartins:         {90803, Coordinate{40.0658333, -75.2044444}, []string{"St. Martins", "St Martins"}},
	ChestnutHillWest:  {90801, Coordinate{40.0763889, -75.2083333}, []string{"Chestnut Hill West", "Chestnut H West"}},
	CheltenAvenue:     {90808, Coordinate{40.0300000, -75.1808333}, []string{"Chelten Avenue", "Chelten Ave"}},
	Carpenter:         {90805, Coordinate{40.0511111, -75.1913889}, []string{"Carpenter"}},
	RichardAllenLane:  {90804, Coordinate{40.0575000, -75.1947222}, []string{"Richard Allen Lane"}},
	Tulpehocken:       {90807, Coordinate{40.0352778, -75.1869444}, []string{"Tulpehocken"}},
	Highland:          {90802, Coordinate{40.0705556, -75.2111111}, []string{"Highland"}},
	QueenLane:         {90809, Coordinate{40.0233333, -75.1780556}, []string{"Queen Lane"}},

	// Cynwyd line
	Cynwyd:           {90001, Coordinate{40.0066667, -75.2316667}, []string{"Cynwyd"}},
	Bala:             {90002, Coordinate{40.0011111, -75.2277778}, []string{"Bala"}},
	WynnefieldAvenue: {90003, Coordinate{39.9900000, -75.2255556}, []string{"Wynnefield Avenue", "Wynnefield Ave"}},

	// Fox Chase line
	FoxChase:   {90815, Coordinate{40.0763889, -75.0833333}, []string{"Fox Chase"}},
	Ryers:      {90814, Coordinate{40.0641667, -75.0863889}, []string{"Ryers"}},
	Cheltenham: {90813, Coordinate{40.0580556, -75.0927778}, []string{"Cheltenham"}},
	Lawndale:   {90812, Coordinate{40.0513889, -75.1030556}, []string{"Lawndale"}},
	Olney:      {90811, Coordinate{40.0333333, -75.1227778}, []string{"Olney"}},

	// Lansdale/Doylestown line
	Doylestown:            {90538, Coordinate{40.3063889, -75.1302778}, []string{"Doylestown"}},
	DelawareValleyCollege: {90537, Coordinate{40.2972222, -75.1616667}, []string{"Delaware Valley College"}},
	NewBritain:            {90536, Coordinate{40.2975000, -75.1797222}, []string{"New Britain"}},
	Chalfont:              {90535, Coordinate{40.2877778, -75.2097222}, []string{"Chalfont"}},
	LinkBelt:              {90534, Coordinate{40.2738889, -75.2466667}, []string{"Link Belt"}},
	Colmar:                {90533, Coordinate{40.2683333, -75.2544444}, []string{"Colmar"}},
	Fortuna:               {90532, Coordinate{40.2594444, -75.2661111}, []string{"Fortuna"}},
	NinthStreetLansdale:   {90539, Coordinate{40.2500000, -75.2791667}, []string{"9th Street Lansdale"}},
	Lansdale:              {90531, Coordinate{40.2427778, -75.2850000}, []string{"Lansdale"}},
	Pennbrook:             {90530, Coordinate{40.2302778, -75.2816667}, []string{"Pennbrook"}},
	NorthWales:            {90529, Coordinate{40.2141667, -75.2772222}, []string{"North Wales"}},
	GwyneddValley:         {90528, Coordinate{40.1847222, -75.2569444}, []string{"Gwynedd Valley"}},
	Penllyn:               {90527, Coordinate{40.1700000, -75.2441667}, []string{"Penllyn"}},
	Ambler:                {90526, Coordinate{40.1536111, -75.2247222}, []string{"Ambler"}},
	FortWashington:        {90525, Coordinate{40.1358333, -75.2122222}, []string{"Fort Washington"}},
	Oreland:               {90524, Coordinate{40.1183333, -75.1838889}, []string{"Oreland"}},
	NorthHills:            {90523, Coordinate{40.1119444, -75.1694444}, []string{"North Hills"}},
	NorthBroad:            {90008, Coordinate{39.9922222, -75.1538889}, []string{"North Broad"}},

	// Media/Wawa line
	Wawa:             {90300, Coordinate{39.901147, -75.459633}, []string{"Wawa"}},
	Elwyn:            {90301, Coordinate{39.9075000, -75.4116667}, []string{"Elwyn", "Elwyn Station"}},
	Media:            {90302, Coordinate{39.9144444, -75.3950000}, []string{"Media"}},
	MoylanRoseValley: {90303, Coordinate{39.9061111, -75.3886111}, []string{"Moylan-Rose Valley"}},
	Wallingford:      {90304, Coordinate{39.9036111, -75.3719444}, []string{"Wallingford"}},
	Swarthmore:       {90305, Coordinate{39.9022222, -75.3508333}, []string{"Swarthmore"}},
	Morton:           {90306, Coordinate{39.9077778, -75.3288889}, []string{"Morton"}},
	Secane:           {90307, Coordinate{39.9158333, -75.3097222}, []string{"Secane"}},
	Primos:           {90308, Coordinate{39.9216667, -75.2983333}, []string{"Primos"}},
	CliftonAldan:     {90309, Coordinate{39.9266667, -75.2902778}, []string{"Clifton-Aldan"}},
	Gladstone:        {90310, Coordinate{39.9327778, -75.2822222}, []string{"Gladstone"}},
	Lansdowne:        {90311, Coordinate{39.9375000, -75.2708333}, []string{"Lansdowne"}},
	FernwoodYeadon:   {90312, Coordinate{39.9397222, -75.2558333}, []string{"Fernwood-Yeadon", "Fernwood"}},
	Angora:           {90313, Coordinate{39.9447222, -75.2386111}, []string{"Angora"}},
	FortyNinthStreet: {90314, Coordinate{39.9436111, -75.2166667}, []string{"49th Street"}},

	// Manayunk/Norristown line
	NorristownElmStreet: {90228, Coordinate{40.1208333, -75.3450000}, []string{"Norristown - Elm Street", "Norristown Elm Street"}},
	MainStreet:          {90227, Coordinate{40.1172222, -75.3486111}, []string{"Main Street"}},
	NorristownTC:        {90226, Coordinate{40.1127778, -75.3441667}, []string{"Norristown T.C.", "Norristown", "Norristown TC", "Norristown Transportation Center"}},
	Conshohocken:        {90225, Coordinate{40.0722222, -75.3086111}, []string{"Conshohocken"}},
	SpringMill:          {90224, Coordinate{40.0741667, -75.2861111}, []string{"Spring Mill"}},
	Miquon:              {90223, Coordinate{40.0586111, -75.2663889}, []string{"Miquon"}},
	IvyRidge:            {90222, Coordinate{40.0341667, -75.2355556}, []string{"Ivy Ridge"}},
	Manayunk:            {90221, Coordinate{40.0269444, -75.2250000}, []string{"Manayunk"}},
	Wissahickon:         {90220, Coordinate{40.0166667, -75.2102778}, []string{"Wissahickon"}},
	EastFalls:           {90219, Coordinate{40.0113889, -75.1919444}, []string{"East Falls"}},
	Allegheny:           {90218, Coordinate{40.0036111, -75.1647222}, []string{"Allegheny"}},

	// Paoli/Thorndale line
	Thorndale:   {90501, Coordinate{39.9927778, -75.7636111}, []string{"Thorndale"}},
	Downingtown: {90502, Coordinate{40.0022222, -75.7102778}, []string{"Downingtown"}},
	Whitford:    {90503, Coordinate{40.0147222, -75.6380556}, []string{"Whitford"}},
	Exton:       {90504, Coordinate{40.0191667, -75.6227778}, []string{"Exton"}},
	Malvern:     {90505, Coordinate{40.0363889, -75.5155556}, []string{"Malvern"}},
	Paoli:       {90506, Coordinate{40.0430556, -75.4827778}, []string{"Paoli"}},
	Wayne:       {90511, Coordinate{40.0458333, -75.3866667}, []string{"Wayne"}},
	StDavids:    {90512, Coordinate{40.0438889, -75.3725000}, []string{"St. Davids", "St Davids"}},
	Berwyn:      {90508, Coordinate{40.0480556, -75.4422222}, []string{"Berwyn"}},
	Devon:       {90509, Coordinate{40.0472222, -75.4227778}, []string{"Devon"}},
	Villanova:   {90514, Coordinate{40.0383333, -75.3416667}, []string{"Villanova"}},
	Rosemont:    {90515, Coordinate{40.0277778, -75.3266667}, []string{"Rosemont"}},
	BrynMawr:    {90516, Coordinate{40.0219444, -75.3163889}, []string{"Bryn Mawr"}},
	Strafford:   {90510, Coordinate{40.0494444, -75.4030556}, []string{"Strafford"}},
	Daylesford:  {90507, Coordinate{40.0430556, -75.4605556}, []string{"Daylesford"}},
	Radnor:      {90513, Coordinate{40.0447222, -75.3588889}, []string{"Radnor"}},
	Haverford:   {90517, Coordinate{40.0138889, -75.2997222}, []string{"Haverford"}},
	Ardmore:     {90518, Coordinate{40.0083333, -75.2902778}, []string{"Ardmore"}},
	Wynnewood:   {90519, Coordinate{40.0027778, -75.2725000}, []string{"Wynnewood"}},
	Narberth:    {90520, Coordinate{40.0047222, -75.2613889}, []string{"Narberth"}},
	Overbrook:   {90522, Coordinate{39.9894444, -75.2494444}, []string{"Overbrook"}},
	Merion:      {90521, Coordinate{39.9986111, -75.2513889}, []string{"Merion"}},

	// Trenton line
	Trenton:                 {90701, Coordinate{40.2177778, -74.7550000}, []string{"Trenton"}},
	Levittown:               {90702, Coordinate{40.1402778, -74.8169444}, []string{"Levittown"}},
	Bristol:                 {90703, Coordinate{40.1047222, -74.8547222}, []string{"Bristol"}},
	Croydon:                 {90704, Coordinate{40.0936111, -74.9066667}, []string{"Croydon"}},
	Eddington:               {90705, Coordinate{40.0830556, -74.9336111}, []string{"Eddington"}},
	CornwellsHeights:        {90706, Coordinate{40.0716667, -74.9522222}, []string{"Cornwells Heights"}},
	Torresdale:              {90707, Coordinate{40.0544444, -74.9844444}, []string{"Torresdale"}},
	HolmesburgJct:           {90708, Coordinate{40.0327778, -75.0236111}, []string{"Holmesburg Jct", "Holmesburg Junction"}},
	Tacony:                  {90709, Coordinate{40.0233333, -75.0388889}, []string{"Tacony"}},
	Bridesburg:              {90710, Coordinate{40.0105556, -75.0697222}, []string{"Bridesburg"}},
	NorthPhiladelphiaAmtrak: {90711, Coordinate{39.9972222, -75.1550000}, []string{"North Philadelphia Amtrak"}},

	// Warminster line
	Warminster:  {90417, Coordinate{40.1952778, -75.0891667}, []string{"Warminster"}},
	Hatboro:     {90416, Coordinate{40.1761111, -75.1025000}, []string{"Hatboro"}},
	WillowGrove: {90415, Coordinate{40.1438889, -75.1141667}, []string{"Willow Grove"}},
	Crestmont:   {90414, Coordinate{40.1333333, -75.1186111}, []string{"Crestmont"}},
	Roslyn:      {90413, Coordinate{40.1208333, -75.1341667}, []string{"Roslyn"}},
	Ardsley:     {90412, Coordinate{40.1141667, -75.1530556}, []string{"Ardsley"}},

	// Wilmington/Newark line
	Newark:             {90201, Coordinate{39.6705556, -75.7527778}, []string{"Newark"}},
	ChurchmansCrossing: {90202, Coordinate{39.6950000, -75.6725000}, []string{"Churchman's Crossing", "Churchmans Crossing"}},
	Wilmington:         {90203, Coordinate{39.7372222, -75.5511111}, []string{"Wilmington"}},
	Claymont:           {90204, Coordinate{39.7977778, -75.4522222}, []string{"Claymont"}},
	MarcusHook:         {90205, Coordinate{39.8216667, -75.4194444}, []string{"Marcus Hook"}},
	HighlandAvenue:     {90206, Coordinate{39.8336111, -75.3933333}, []string{"Highland Avenue", "Highland Ave"}},
	Chester:            {90207, Coordinate{39.8497222, -75.3600000}, []string{"Chester"}},
	Eddystone:          {90208, Coordinate{39.8572222, -75.3422222}, []string{"Eddystone"}},
	CrumLynne:          {90209, Coordinate{39.8719444, -75.3311111}, []string{"Crum Lynne"}},
	RidleyPark:         {90210, Coordinate{39.8805556, -75.3222222}, []string{"Ridley Park"}},
	ProspectParkMoore:  {90211, Coordinate{39.8883333, -75.3088889}, []string{"Prospect Park - Moore", "Prospect Park Moore"}},
	Norwood:            {90212, Coordinate{39.8916667, -75.3016667}, []string{"Norwood"}},
	Glenolden:          {90213, Coordinate{39.8963889, -75.2900000}, []string{"Glenolden"}},
	Folcroft:           {90214, Coordinate{39.9005556, -75.2797222}, []string{"Folcroft"}},
	SharonHill:         {90215, Coordinate{39.9044444, -75.2708333}, []string{"Sharon Hill"}},
	CurtisPark:         {90216, Coordinate{39.9080556, -75.2650000}, []string{"Curtis Park"}},
	Darby:              {90217, Coordinate{39.9130556, -75.2544444}, []string{"Darby"}},

	// West Trenton line
	WestTrenton: {90327, Coordinate{40.2577778, -74.8152778}, []string{"West Trenton"}},
	Yardley:     {90326, Coordinate{40.2352778, -74.8305556}, []string{"Yardley"}},
	Woodbourne:  {90325, Coordinate{40.1925000, -74.8891667}, []string{"Woodbourne"}},
	Langhorne:   {90324, Coordinate{40.1608333, -74.9125000}, []string{"Langhorne"}},
	Neshaminy:   {90323, Coordinate{40.1469444, -74.9616667}, []string{"Neshaminy"}},
	Trevose:     {90322, Coordinate{40.1402778, -74.9825000}, []string{"Trevose"}},
	Somerton:    {90321, Coordinate{40.1305556, -75.0119444}, []string{"Somerton"}},
	ForestHills: {90320, Coordinate{40.1277778, -75.0205556}, []string{"Forest Hills"}},
	Philmont:    {90319, Coordinate{40.1219444, -75.0436111}, []string{"Philmont"}},
	Bethayres:   {90318, Coordinate{40.1166667, -75.0683333}, []string{"Bethayres"}},
	Meadowbrook: {90317, Coordinate{40.1113889, -75.0925000}, []string{"Meadowbrook"}},
	Rydal:       {90316, Coordinate{40.1075000, -75.1105556}, []string{"Rydal"}},
	Noble:       {90315, Coordinate{40.1044444, -75.1241667}, []string{"Noble"}},

	// Shared
	WayneJunction:     {90009, Coordinate{40.0222222, -75.1600000}, []string{"Wayne Junction"}},
	Glenside:          {90411, Coordinate{40.1013889, -75.1536111}, []string{"Glenside"}},
	JenkintownWyncote: {90410, Coordinate{40.0927778, -75.1375000}, []string{"Jenkintown Wyncote", "Jenkintown-Wyncote"}},
	FernRockTC:        {90407, Coordinate{40.0405556, -75.1347222}, []string{"Fern Rock T C", "Fern Rock TC", "Fern Rock Transportation Center"}},
	ElkinsPark:        {90409, Coordinate{40.0713889, -75.1277778}, []string{"Elkins Park"}},
	MelrosePark:       {90408, Coordinate{40.0594444, -75.1291667}, []string{"Melrose Park"}},

	// Shared Center City
	Gray30thStreet:      {90004, Coordinate{39.9566667, -75.1816667}, []string{"Gray 30th Street", "30th Street Station", "30th St", "30th Street Gray", "Gray 30th St"}},
	SuburbanStation:     {90005, Coordinate{39.9538889, -75.1677778}, []string{"Suburban Station"}},
	JeffersonStation:    {90006, Coordinate{39.9525000, -75.1580556}, []string{"Jefferson Station", "Jefferson"}},
	TempleUniversity:    {90007, Coordinate{39.9813889, -75.1494444}, []string{"Temple University", "Temple U"}},
	PennMedicineStation: {90406, Coordinate{39.9480556, -75.1902778}, []string{"Penn Medicine Station", "Penn Medical Station"}},
}
